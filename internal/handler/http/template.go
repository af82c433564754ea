package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shiftly-hq/shiftly-backend-go/internal/domain/template"
	"github.com/shiftly-hq/shiftly-backend-go/internal/handler/http/response"
)

type TemplateHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type templateHandlerImpl struct {
	templateService template.Service
}

func NewTemplateHandler(templateService template.Service) TemplateHandler {
	return &templateHandlerImpl{templateService: templateService}
}

func (h *templateHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	_, companyID, err := requestClaims(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req template.CreateTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.CompanyID = companyID

	result, err := h.templateService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Template created successfully", result)
}

func (h *templateHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	_, companyID, err := requestClaims(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.templateService.Get(r.Context(), chi.URLParam(r, "templateID"), companyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *templateHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	_, companyID, err := requestClaims(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.templateService.List(r.Context(), companyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *templateHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	_, companyID, err := requestClaims(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req template.UpdateTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "templateID")
	req.CompanyID = companyID

	result, err := h.templateService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Template updated successfully", result)
}

func (h *templateHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	_, companyID, err := requestClaims(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.templateService.Delete(r.Context(), chi.URLParam(r, "templateID"), companyID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Template deleted successfully", nil)
}
