package accessrequest

import "context"

type Repository interface {
	Create(ctx context.Context, r *AccessRequest) error
	Update(ctx context.Context, r *AccessRequest) error
	GetBySID(ctx context.Context, tenantCNPJ, sid string) (*AccessRequest, error)
	ListByStatus(ctx context.Context, tenantCNPJ string, status Status) ([]*AccessRequest, error)
	ExistsPending(ctx context.Context, userEmail, tenantCNPJ string) (bool, error)
}
