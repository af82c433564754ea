package response

import (
	"errors"
	"net/http"

	"github.com/shiftly-hq/shiftly-backend-go/internal/domain/auth"
	"github.com/shiftly-hq/shiftly-backend-go/internal/domain/company"
	"github.com/shiftly-hq/shiftly-backend-go/internal/domain/employee"
	"github.com/shiftly-hq/shiftly-backend-go/internal/domain/shift"
	"github.com/shiftly-hq/shiftly-backend-go/internal/domain/template"
	"github.com/shiftly-hq/shiftly-backend-go/internal/domain/user"
	"github.com/shiftly-hq/shiftly-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Every domain error
// carries a stable machine-readable code; anything unmapped becomes a
// generic 500 without leaking internals.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	var ruleErr *shift.RuleViolationError
	if errors.As(err, &ruleErr) {
		UnprocessableEntity(w, "BUSINESS_RULE_VIOLATION", ruleErr.Error(), ruleErr.Violations)
		return
	}

	var conflictsErr *shift.ConflictsDetectedError
	if errors.As(err, &conflictsErr) {
		Conflict(w, "CONFLICTS_DETECTED", conflictsErr.Error(), conflictsErr.Conflicts)
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "EMAIL_EXISTS", "Email already registered", nil)
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "This action requires owner or manager privileges")

	// Company domain errors
	case errors.Is(err, company.ErrCompanyNotFound), errors.Is(err, auth.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, company.ErrCompanyUsernameExists):
		Conflict(w, "COMPANY_USERNAME_EXISTS", "Company username already taken", nil)
	case errors.Is(err, company.ErrSettingsNotFound):
		NotFound(w, "Company settings not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeNotInCompany):
		Forbidden(w, "Employee does not belong to your company")
	case errors.Is(err, employee.ErrEmployeeInactive):
		BadRequest(w, "Employee is inactive", nil)

	// Template domain errors
	case errors.Is(err, template.ErrTemplateNotFound):
		NotFound(w, "Shift template not found")
	case errors.Is(err, template.ErrTemplateNameExists):
		Conflict(w, "TEMPLATE_NAME_EXISTS", "A template with this name already exists", nil)

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrShiftNotInCompany):
		Forbidden(w, "Shift does not belong to your company")
	case errors.Is(err, shift.ErrInvalidTimeFormat):
		BadRequest(w, "Time must match HH:mm (24-hour, UTC, no timezone suffix)", nil)
	case errors.Is(err, shift.ErrOvernightNotAllowed):
		BadRequest(w, "End time must be after start time; overnight shifts are not allowed", nil)
	case errors.Is(err, shift.ErrShiftOverlap):
		Conflict(w, "SHIFT_OVERLAP", "Shift overlaps an existing shift", nil)
	case errors.Is(err, shift.ErrDuplicateShift):
		Conflict(w, "DUPLICATE_SHIFT", "An identical shift already exists for this employee and date", nil)
	case errors.Is(err, shift.ErrInvalidStrategy):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, shift.ErrInvalidRequestData),
		errors.Is(err, employee.ErrInvalidRequestData),
		errors.Is(err, company.ErrInvalidRequestData),
		errors.Is(err, template.ErrInvalidRequestData):
		BadRequest(w, "Invalid request data", nil)

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
