package tenant

import "context"

type Repository interface {
	Create(ctx context.Context, t *Tenant) error
	Update(ctx context.Context, t *Tenant) error
	GetByCNPJ(ctx context.Context, cnpj string) (*Tenant, error)
	ExistsByCNPJ(ctx context.Context, cnpj string) (bool, error)
}

type DepartmentRepository interface {
	Create(ctx context.Context, d *Department) error
	ListByTenant(ctx context.Context, tenantCNPJ string) ([]*Department, error)
}
