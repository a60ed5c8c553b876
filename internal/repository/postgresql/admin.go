package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/staffline/staffline-backend-go/internal/domain/admin"
	"github.com/staffline/staffline-backend-go/internal/pkg/database"
)

type adminRepository struct {
	db *database.DB
}

func NewAdminRepository(db *database.DB) admin.AdminRepository {
	return &adminRepository{db: db}
}

// GetByEmail implements admin.AdminRepository.
func (r *adminRepository) GetByEmail(ctx context.Context, email string) (admin.Admin, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, email, password_hash, created_at, updated_at
		FROM admins
		WHERE email = $1
	`

	var a admin.Admin
	err := q.QueryRow(ctx, query, email).Scan(
		&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return admin.Admin{}, admin.ErrAdminNotFound
		}
		return admin.Admin{}, fmt.Errorf("failed to get admin by email: %w", err)
	}

	return a, nil
}
