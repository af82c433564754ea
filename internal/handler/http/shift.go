package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shiftly-hq/shiftly-backend-go/internal/domain/shift"
	"github.com/shiftly-hq/shiftly-backend-go/internal/handler/http/response"
)

type ShiftHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Confirm(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Validate(w http.ResponseWriter, r *http.Request)
	BulkCreate(w http.ResponseWriter, r *http.Request)
	Duplicate(w http.ResponseWriter, r *http.Request)
	Suggestions(w http.ResponseWriter, r *http.Request)
	CleanupPatterns(w http.ResponseWriter, r *http.Request)
}

type shiftHandlerImpl struct {
	shiftService shift.Service
}

func NewShiftHandler(shiftService shift.Service) ShiftHandler {
	return &shiftHandlerImpl{shiftService: shiftService}
}

func (h *shiftHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	actorID, companyID, err := requestClaims(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req shift.CreateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.CompanyID = companyID
	req.ActorID = actorID

	result, err := h.shiftService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift created successfully", result)
}

func (h *shiftHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.shiftService.Get(r.Context(), chi.URLParam(r, "shiftID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *shiftHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	f := shift.Filter{}
	q := r.URL.Query()
	if v := q.Get("employee_id"); v != "" {
		f.EmployeeID = &v
	}
	if v := q.Get("date_from"); v != "" {
		f.DateFrom = &v
	}
	if v := q.Get("date_to"); v != "" {
		f.DateTo = &v
	}
	if v := q.Get("status"); v != "" {
		f.Status = &v
	}
	f.Page, _ = strconv.Atoi(q.Get("page"))
	f.Limit, _ = strconv.Atoi(q.Get("limit"))

	result, err := h.shiftService.List(r.Context(), f)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	totalPages := int((result.TotalCount + int64(result.Limit) - 1) / int64(result.Limit))
	response.SuccessWithMeta(w, result.Shifts, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: totalPages,
	})
}

func (h *shiftHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	actorID, companyID, err := requestClaims(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req shift.UpdateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "shiftID")
	req.CompanyID = companyID
	req.ActorID = actorID

	result, err := h.shiftService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift updated successfully", result)
}

func (h *shiftHandlerImpl) Confirm(w http.ResponseWriter, r *http.Request) {
	result, err := h.shiftService.Confirm(r.Context(), chi.URLParam(r, "shiftID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift confirmed", result)
}

func (h *shiftHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.shiftService.Delete(r.Context(), chi.URLParam(r, "shiftID")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift deleted successfully", nil)
}

// Validate is the dry-run endpoint: full conflict and rule analysis for a
// candidate shift, nothing written.
func (h *shiftHandlerImpl) Validate(w http.ResponseWriter, r *http.Request) {
	actorID, companyID, err := requestClaims(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req shift.CreateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.CompanyID = companyID
	req.ActorID = actorID

	report, err := h.shiftService.ValidateCandidate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}

func (h *shiftHandlerImpl) BulkCreate(w http.ResponseWriter, r *http.Request) {
	actorID, companyID, err := requestClaims(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req shift.BulkCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.CompanyID = companyID
	req.ActorID = actorID

	result, err := h.shiftService.BulkCreate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if req.PreviewOnly {
		response.Success(w, result)
		return
	}
	response.Created(w, "Shifts created successfully", result)
}

func (h *shiftHandlerImpl) Duplicate(w http.ResponseWriter, r *http.Request) {
	actorID, companyID, err := requestClaims(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req shift.DuplicateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.CompanyID = companyID
	req.ActorID = actorID

	result, err := h.shiftService.Duplicate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shifts duplicated successfully", result)
}

func (h *shiftHandlerImpl) Suggestions(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employee_id")
	if employeeID == "" {
		response.BadRequest(w, "employee_id is required", nil)
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	result, err := h.shiftService.Suggestions(r.Context(), employeeID, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *shiftHandlerImpl) CleanupPatterns(w http.ResponseWriter, r *http.Request) {
	removed, err := h.shiftService.CleanupPatterns(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Stale patterns removed", map[string]int64{"removed": removed})
}
