package company

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shiftly-hq/shiftly-backend-go/internal/domain/company"
	"github.com/shiftly-hq/shiftly-backend-go/internal/pkg/cache"
)

type CompanyServiceImpl struct {
	companyRepository company.Repository
	settingsRepo      company.SettingsRepository
	settingsCache     *cache.TTL[company.Settings]
}

func NewCompanyService(
	companyRepository company.Repository,
	settingsRepo company.SettingsRepository,
	cacheTTL time.Duration,
) company.Service {
	return &CompanyServiceImpl{
		companyRepository: companyRepository,
		settingsRepo:      settingsRepo,
		settingsCache:     cache.NewTTL[company.Settings](cacheTTL),
	}
}

// GetCompany implements company.Service.
func (s *CompanyServiceImpl) GetCompany(ctx context.Context, companyID string) (company.CompanyResponse, error) {
	companyData, err := s.companyRepository.GetByID(ctx, companyID)
	if err != nil {
		return company.CompanyResponse{}, err
	}
	return toCompanyResponse(companyData), nil
}

// UpdateCompany implements company.Service.
func (s *CompanyServiceImpl) UpdateCompany(ctx context.Context, req company.UpdateCompanyRequest) (company.CompanyResponse, error) {
	if err := req.Validate(); err != nil {
		return company.CompanyResponse{}, err
	}

	companyData, err := s.companyRepository.Update(ctx, req)
	if err != nil {
		return company.CompanyResponse{}, err
	}
	return toCompanyResponse(companyData), nil
}

// GetSettings implements company.Service. Settings are seeded with defaults
// on first read and cached per company for the configured TTL. Bulk
// operations hit this once per request instead of once per candidate.
func (s *CompanyServiceImpl) GetSettings(ctx context.Context, companyID string) (company.Settings, error) {
	if settings, ok := s.settingsCache.Get(companyID); ok {
		return settings, nil
	}

	settings, err := s.settingsRepo.GetByCompanyID(ctx, companyID)
	if errors.Is(err, company.ErrSettingsNotFound) {
		settings, err = s.settingsRepo.CreateDefaults(ctx, companyID)
	}
	if err != nil {
		return company.Settings{}, fmt.Errorf("failed to load company settings: %w", err)
	}

	s.settingsCache.Set(companyID, settings)
	return settings, nil
}

// UpdateSettings implements company.Service. The cache entry is invalidated
// so the next read sees the new values immediately.
func (s *CompanyServiceImpl) UpdateSettings(ctx context.Context, req company.UpdateSettingsRequest) (company.Settings, error) {
	if err := req.Validate(); err != nil {
		return company.Settings{}, err
	}

	// Make sure the row exists before a partial patch; a company that has
	// never read its settings still gets the defaults as a base.
	if _, err := s.GetSettings(ctx, req.CompanyID); err != nil {
		return company.Settings{}, err
	}

	settings, err := s.settingsRepo.Update(ctx, req)
	if err != nil {
		return company.Settings{}, err
	}

	s.settingsCache.Invalidate(req.CompanyID)
	return settings, nil
}

func toCompanyResponse(c company.Company) company.CompanyResponse {
	return company.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		Username:  c.Username,
		Address:   c.Address,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.Format(time.RFC3339),
	}
}
