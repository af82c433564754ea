package employee

import "context"

type Repository interface {
	Create(ctx context.Context, e Employee) (Employee, error)

	// GetByID resolves an employee without a company filter. Callers must
	// compare CompanyID against the requester's tenant before using the
	// result; a mismatch is an authorization failure, not a lookup miss.
	GetByID(ctx context.Context, id string) (Employee, error)

	GetByCompanyID(ctx context.Context, companyID string, filter Filter) ([]Employee, int64, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (Employee, error)
	SoftDelete(ctx context.Context, id, companyID string) error
}

type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Get(ctx context.Context, id, companyID string) (EmployeeResponse, error)
	List(ctx context.Context, companyID string, f Filter) (ListEmployeesResponse, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id, companyID string) error
}
