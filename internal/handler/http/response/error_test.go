package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shiftly-hq/shiftly-backend-go/internal/domain/auth"
	"github.com/shiftly-hq/shiftly-backend-go/internal/domain/employee"
	"github.com/shiftly-hq/shiftly-backend-go/internal/domain/shift"
	"github.com/shiftly-hq/shiftly-backend-go/internal/domain/template"
	"github.com/shiftly-hq/shiftly-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func TestHandleError_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"employee cross-tenant", employee.ErrEmployeeNotInCompany, http.StatusForbidden, "FORBIDDEN"},
		{"shift cross-tenant", shift.ErrShiftNotInCompany, http.StatusForbidden, "FORBIDDEN"},
		{"shift not found", shift.ErrShiftNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"template not found", template.ErrTemplateNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"bad time format", shift.ErrInvalidTimeFormat, http.StatusBadRequest, "BAD_REQUEST"},
		{"overnight", shift.ErrOvernightNotAllowed, http.StatusBadRequest, "BAD_REQUEST"},
		{"bad strategy", shift.ErrInvalidStrategy, http.StatusBadRequest, "BAD_REQUEST"},
		{"overlap", shift.ErrShiftOverlap, http.StatusConflict, "SHIFT_OVERLAP"},
		{"duplicate", shift.ErrDuplicateShift, http.StatusConflict, "DUPLICATE_SHIFT"},
		{"template name taken", template.ErrTemplateNameExists, http.StatusConflict, "TEMPLATE_NAME_EXISTS"},
		{"unmapped", errors.New("pool exhausted"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			HandleError(w, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)

			resp := decodeEnvelope(t, w)
			assert.False(t, resp["success"].(bool))
			errObj := resp["error"].(map[string]interface{})
			assert.Equal(t, tt.wantCode, errObj["code"])
		})
	}
}

func TestHandleError_RuleViolationCarriesMetadata(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	HandleError(w, &shift.RuleViolationError{Violations: []shift.Violation{
		{Rule: shift.RuleDailyHours, Severity: shift.ViolationError, Message: "daily limit exceeded"},
	}})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	resp := decodeEnvelope(t, w)
	errObj := resp["error"].(map[string]interface{})
	assert.Equal(t, "BUSINESS_RULE_VIOLATION", errObj["code"])

	metadata := errObj["metadata"].([]interface{})
	require.Len(t, metadata, 1)
	violation := metadata[0].(map[string]interface{})
	assert.Equal(t, shift.RuleDailyHours, violation["rule"])
	assert.Equal(t, string(shift.ViolationError), violation["severity"])
}

func TestHandleError_ConflictsDetectedCarriesMetadata(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	HandleError(w, &shift.ConflictsDetectedError{Conflicts: []shift.CandidateConflict{
		{EmployeeID: "emp-1", Date: "2025-08-11", StartTime: "09:00", EndTime: "17:00", Reason: shift.SkipReasonConflict},
		{EmployeeID: "emp-2", Date: "2025-08-11", StartTime: "09:00", EndTime: "17:00", Reason: shift.SkipReasonConflict},
	}})

	assert.Equal(t, http.StatusConflict, w.Code)

	resp := decodeEnvelope(t, w)
	errObj := resp["error"].(map[string]interface{})
	assert.Equal(t, "CONFLICTS_DETECTED", errObj["code"])

	metadata := errObj["metadata"].([]interface{})
	assert.Len(t, metadata, 2)
	first := metadata[0].(map[string]interface{})
	assert.Equal(t, "emp-1", first["employee_id"])
}

func TestHandleError_ValidationErrors(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	HandleError(w, validator.ValidationErrors{
		{Field: "start_time", Message: "start_time must match HH:mm"},
		{Field: "date", Message: "date is required"},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	resp := decodeEnvelope(t, w)
	errObj := resp["error"].(map[string]interface{})
	assert.Equal(t, "VALIDATION_ERROR", errObj["code"])

	details := errObj["details"].(map[string]interface{})
	assert.Contains(t, details, "start_time")
	assert.Contains(t, details, "date")
}
