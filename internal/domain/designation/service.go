package designation

import "context"

type DesignationService interface {
	ListDesignations(ctx context.Context, req ListDesignationsRequest) (ListDesignationResponse, error)
	GetDesignation(ctx context.Context, id string) (DesignationResponse, error)
	CreateDesignation(ctx context.Context, req CreateDesignationRequest) (DesignationResponse, error)
	UpdateDesignation(ctx context.Context, req UpdateDesignationRequest) (DesignationResponse, error)
	DeleteDesignation(ctx context.Context, id string) error
}
