package company

import "errors"

var (
	ErrCompanyNotFound       = errors.New("company not found")
	ErrCompanyUsernameExists = errors.New("company username already taken")
	ErrSettingsNotFound      = errors.New("company settings not found")
	ErrInvalidRequestData    = errors.New("invalid request data")
)
