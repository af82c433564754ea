package template

import "context"

type Repository interface {
	Create(ctx context.Context, t Template) (Template, error)
	GetByID(ctx context.Context, id, companyID string) (Template, error)
	GetByCompanyID(ctx context.Context, companyID string) ([]Template, error)

	// GetMostUsed returns up to limit templates ordered by usage count
	// descending. Feeds the third suggestion source.
	GetMostUsed(ctx context.Context, companyID string, limit int) ([]Template, error)

	Update(ctx context.Context, req UpdateTemplateRequest) (Template, error)
	IncrementUsage(ctx context.Context, id, companyID string) error
	SoftDelete(ctx context.Context, id, companyID string) error
}

type Service interface {
	Create(ctx context.Context, req CreateTemplateRequest) (TemplateResponse, error)
	Get(ctx context.Context, id, companyID string) (TemplateResponse, error)
	List(ctx context.Context, companyID string) ([]TemplateResponse, error)
	Update(ctx context.Context, req UpdateTemplateRequest) (TemplateResponse, error)
	Delete(ctx context.Context, id, companyID string) error
}
