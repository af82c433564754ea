package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/shiftly-hq/shiftly-backend-go/internal/domain/company"
	"github.com/shiftly-hq/shiftly-backend-go/internal/handler/http/response"
)

type CompanyHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	GetSettings(w http.ResponseWriter, r *http.Request)
	UpdateSettings(w http.ResponseWriter, r *http.Request)
}

type companyHandlerImpl struct {
	companyService company.Service
}

func NewCompanyHandler(companyService company.Service) CompanyHandler {
	return &companyHandlerImpl{companyService: companyService}
}

func (h *companyHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	_, companyID, err := requestClaims(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.companyService.GetCompany(r.Context(), companyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *companyHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	_, companyID, err := requestClaims(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req company.UpdateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.CompanyID = companyID

	result, err := h.companyService.UpdateCompany(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Company updated successfully", result)
}

func (h *companyHandlerImpl) GetSettings(w http.ResponseWriter, r *http.Request) {
	_, companyID, err := requestClaims(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	settings, err := h.companyService.GetSettings(r.Context(), companyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, toSettingsResponse(settings))
}

func (h *companyHandlerImpl) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	_, companyID, err := requestClaims(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req company.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.CompanyID = companyID

	settings, err := h.companyService.UpdateSettings(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Settings updated successfully", toSettingsResponse(settings))
}

func toSettingsResponse(s company.Settings) company.SettingsResponse {
	return company.SettingsResponse{
		CompanyID:            s.CompanyID,
		MaxDailyHours:        s.MaxDailyHours.String(),
		MaxWeeklyHours:       s.MaxWeeklyHours.String(),
		MinBreakHours:        s.MinBreakHours.String(),
		AllowOvernightShifts: s.AllowOvernightShifts,
		Timezone:             s.Timezone,
		UpdatedAt:            s.UpdatedAt.Format(time.RFC3339),
	}
}
