package admin

import "context"

type AdminRepository interface {
	GetByEmail(ctx context.Context, email string) (Admin, error)
}
