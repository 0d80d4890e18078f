package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, tenantCNPJ, sid string) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetBySID(ctx context.Context, tenantCNPJ, sid string) (*User, error)
	// GetByUserSID looks a user up without tenant scope. Only the session
	// resolver uses it, with the SID taken from a verified token.
	GetByUserSID(ctx context.Context, sid string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ListByTenant(ctx context.Context, tenantCNPJ string) ([]*User, error)
}
