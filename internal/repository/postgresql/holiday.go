package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/staffline/staffline-backend-go/internal/domain/attendance"
	"github.com/staffline/staffline-backend-go/internal/pkg/database"
)

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) attendance.HolidayRepository {
	return &holidayRepository{db: db}
}

// Create implements attendance.HolidayRepository.
func (r *holidayRepository) Create(ctx context.Context, holiday attendance.Holiday) (attendance.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	holiday.ID = uuid.NewString()

	query := `
		INSERT INTO holidays (id, company_id, holiday_date, name)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		holiday.ID, holiday.CompanyID, holiday.HolidayDate, holiday.Name,
	).Scan(&holiday.CreatedAt)
	if err != nil {
		return attendance.Holiday{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return holiday, nil
}

// Delete implements attendance.HolidayRepository.
func (r *holidayRepository) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM holidays WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrHolidayNotFound
	}

	return nil
}

// ListByCompany implements attendance.HolidayRepository.
func (r *holidayRepository) ListByCompany(ctx context.Context, companyID string) ([]attendance.Holiday, error) {
	query := `
		SELECT id, company_id, holiday_date, name, created_at
		FROM holidays
		WHERE company_id = $1
		ORDER BY holiday_date
	`
	return r.list(ctx, query, companyID)
}

// ListByCompanyAndRange implements attendance.HolidayRepository.
func (r *holidayRepository) ListByCompanyAndRange(ctx context.Context, companyID string, from, to time.Time) ([]attendance.Holiday, error) {
	query := `
		SELECT id, company_id, holiday_date, name, created_at
		FROM holidays
		WHERE company_id = $1 AND holiday_date BETWEEN $2 AND $3
		ORDER BY holiday_date
	`
	return r.list(ctx, query, companyID, from, to)
}

func (r *holidayRepository) list(ctx context.Context, query string, args ...any) ([]attendance.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []attendance.Holiday
	for rows.Next() {
		var h attendance.Holiday
		if err := rows.Scan(&h.ID, &h.CompanyID, &h.HolidayDate, &h.Name, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}

	return holidays, rows.Err()
}
