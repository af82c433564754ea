package company

import "context"

type Repository interface {
	Create(ctx context.Context, c Company) (Company, error)
	GetByID(ctx context.Context, id string) (Company, error)
	Update(ctx context.Context, req UpdateCompanyRequest) (Company, error)
}

type SettingsRepository interface {
	// GetByCompanyID returns the settings row, or ErrSettingsNotFound when
	// the company has never been seeded.
	GetByCompanyID(ctx context.Context, companyID string) (Settings, error)
	CreateDefaults(ctx context.Context, companyID string) (Settings, error)
	Update(ctx context.Context, req UpdateSettingsRequest) (Settings, error)
}

type Service interface {
	GetCompany(ctx context.Context, companyID string) (CompanyResponse, error)
	UpdateCompany(ctx context.Context, req UpdateCompanyRequest) (CompanyResponse, error)

	// GetSettings seeds defaults on first read and serves cached values
	// within the cache TTL.
	GetSettings(ctx context.Context, companyID string) (Settings, error)
	UpdateSettings(ctx context.Context, req UpdateSettingsRequest) (Settings, error)
}
