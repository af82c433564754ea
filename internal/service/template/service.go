package template

import (
	"context"
	"time"

	"github.com/shiftly-hq/shiftly-backend-go/internal/domain/template"
	"github.com/shiftly-hq/shiftly-backend-go/internal/pkg/timeutil"
)

type TemplateServiceImpl struct {
	template.Repository
}

func NewTemplateService(templateRepository template.Repository) template.Service {
	return &TemplateServiceImpl{Repository: templateRepository}
}

// Create implements template.Service.
func (s *TemplateServiceImpl) Create(ctx context.Context, req template.CreateTemplateRequest) (template.TemplateResponse, error) {
	if err := req.Validate(); err != nil {
		return template.TemplateResponse{}, err
	}

	start, _ := timeutil.ParseClock(req.StartTime)
	end, _ := timeutil.ParseClock(req.EndTime)

	created, err := s.Repository.Create(ctx, template.Template{
		CompanyID: req.CompanyID,
		Name:      req.Name,
		StartTime: start,
		EndTime:   end,
	})
	if err != nil {
		return template.TemplateResponse{}, err
	}
	return toTemplateResponse(created), nil
}

// Get implements template.Service.
func (s *TemplateServiceImpl) Get(ctx context.Context, id, companyID string) (template.TemplateResponse, error) {
	t, err := s.Repository.GetByID(ctx, id, companyID)
	if err != nil {
		return template.TemplateResponse{}, err
	}
	return toTemplateResponse(t), nil
}

// List implements template.Service.
func (s *TemplateServiceImpl) List(ctx context.Context, companyID string) ([]template.TemplateResponse, error) {
	templates, err := s.Repository.GetByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	resp := make([]template.TemplateResponse, 0, len(templates))
	for _, t := range templates {
		resp = append(resp, toTemplateResponse(t))
	}
	return resp, nil
}

// Update implements template.Service.
func (s *TemplateServiceImpl) Update(ctx context.Context, req template.UpdateTemplateRequest) (template.TemplateResponse, error) {
	if err := req.Validate(); err != nil {
		return template.TemplateResponse{}, err
	}

	// Cross-field check: the patched pair must still be a same-day range.
	existing, err := s.Repository.GetByID(ctx, req.ID, req.CompanyID)
	if err != nil {
		return template.TemplateResponse{}, err
	}
	start, end := existing.StartTime, existing.EndTime
	if req.StartTime != nil {
		start, _ = timeutil.ParseClock(*req.StartTime)
	}
	if req.EndTime != nil {
		end, _ = timeutil.ParseClock(*req.EndTime)
	}
	if end <= start {
		return template.TemplateResponse{}, template.ErrInvalidRequestData
	}

	updated, err := s.Repository.Update(ctx, req)
	if err != nil {
		return template.TemplateResponse{}, err
	}
	return toTemplateResponse(updated), nil
}

// Delete implements template.Service.
func (s *TemplateServiceImpl) Delete(ctx context.Context, id, companyID string) error {
	return s.Repository.SoftDelete(ctx, id, companyID)
}

func toTemplateResponse(t template.Template) template.TemplateResponse {
	return template.TemplateResponse{
		ID:         t.ID,
		Name:       t.Name,
		StartTime:  t.StartTime.String(),
		EndTime:    t.EndTime.String(),
		UsageCount: t.UsageCount,
		CreatedAt:  t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  t.UpdatedAt.Format(time.RFC3339),
	}
}
