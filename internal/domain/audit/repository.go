package audit

import "context"

type Repository interface {
	Create(ctx context.Context, e Entry) error
	GetByCompanyID(ctx context.Context, companyID string, page, limit int) ([]Entry, int64, error)
}
