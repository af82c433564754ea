package employee

import (
	"context"
	"time"

	"github.com/shiftly-hq/shiftly-backend-go/internal/domain/employee"
	"github.com/shiftly-hq/shiftly-backend-go/internal/pkg/timeutil"
)

type EmployeeServiceImpl struct {
	employee.Repository
}

func NewEmployeeService(employeeRepository employee.Repository) employee.Service {
	return &EmployeeServiceImpl{Repository: employeeRepository}
}

// Create implements employee.Service.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	e := employee.Employee{
		CompanyID:  req.CompanyID,
		FullName:   req.FullName,
		Email:      req.Email,
		Position:   req.Position,
		Department: req.Department,
		Status:     employee.StatusActive,
	}
	if req.HireDate != nil {
		hireDate, err := timeutil.ParseDate(*req.HireDate)
		if err != nil {
			return employee.EmployeeResponse{}, employee.ErrInvalidRequestData
		}
		e.HireDate = &hireDate
	}

	created, err := s.Repository.Create(ctx, e)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toEmployeeResponse(created), nil
}

// Get implements employee.Service. A hit in another tenant reports
// ErrEmployeeNotInCompany so the handler can answer 403 instead of 404.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id, companyID string) (employee.EmployeeResponse, error) {
	e, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if e.CompanyID != companyID {
		return employee.EmployeeResponse{}, employee.ErrEmployeeNotInCompany
	}
	return toEmployeeResponse(e), nil
}

// List implements employee.Service.
func (s *EmployeeServiceImpl) List(ctx context.Context, companyID string, f employee.Filter) (employee.ListEmployeesResponse, error) {
	if err := f.Validate(); err != nil {
		return employee.ListEmployeesResponse{}, err
	}

	employees, total, err := s.Repository.GetByCompanyID(ctx, companyID, f)
	if err != nil {
		return employee.ListEmployeesResponse{}, err
	}

	resp := employee.ListEmployeesResponse{
		TotalCount: total,
		Page:       f.Page,
		Limit:      f.Limit,
		Employees:  make([]employee.EmployeeResponse, 0, len(employees)),
	}
	for _, e := range employees {
		resp.Employees = append(resp.Employees, toEmployeeResponse(e))
	}
	return resp, nil
}

// Update implements employee.Service.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	existing, err := s.Repository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if existing.CompanyID != req.CompanyID {
		return employee.EmployeeResponse{}, employee.ErrEmployeeNotInCompany
	}

	updated, err := s.Repository.Update(ctx, req)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toEmployeeResponse(updated), nil
}

// Delete implements employee.Service.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id, companyID string) error {
	existing, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.CompanyID != companyID {
		return employee.ErrEmployeeNotInCompany
	}
	return s.Repository.SoftDelete(ctx, id, companyID)
}

func toEmployeeResponse(e employee.Employee) employee.EmployeeResponse {
	resp := employee.EmployeeResponse{
		ID:         e.ID,
		FullName:   e.FullName,
		Email:      e.Email,
		Position:   e.Position,
		Department: e.Department,
		Status:     string(e.Status),
		CreatedAt:  e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  e.UpdatedAt.Format(time.RFC3339),
	}
	if e.HireDate != nil {
		hireDate := timeutil.FormatDate(*e.HireDate)
		resp.HireDate = &hireDate
	}
	return resp
}
