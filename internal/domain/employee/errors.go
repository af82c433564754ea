package employee

import "errors"

var (
	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrEmployeeNotInCompany = errors.New("employee does not belong to your company")
	ErrEmployeeInactive     = errors.New("employee is inactive")
	ErrInvalidRequestData   = errors.New("invalid request data")
)
