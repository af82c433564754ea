package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/shiftly-hq/shiftly-backend-go/internal/domain/audit"
	"github.com/shiftly-hq/shiftly-backend-go/internal/handler/http/response"
)

type AuditHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type auditHandlerImpl struct {
	auditRepo audit.Repository
}

func NewAuditHandler(auditRepo audit.Repository) AuditHandler {
	return &auditHandlerImpl{auditRepo: auditRepo}
}

type auditEntryResponse struct {
	ID         string                 `json:"id"`
	ActorID    string                 `json:"actor_id"`
	Action     string                 `json:"action"`
	EntityType string                 `json:"entity_type"`
	EntityID   string                 `json:"entity_id,omitempty"`
	Detail     map[string]interface{} `json:"detail,omitempty"`
	CreatedAt  string                 `json:"created_at"`
}

func (h *auditHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	_, companyID, err := requestClaims(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	entries, total, err := h.auditRepo.GetByCompanyID(r.Context(), companyID, page, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result := make([]auditEntryResponse, 0, len(entries))
	for _, e := range entries {
		result = append(result, auditEntryResponse{
			ID:         e.ID,
			ActorID:    e.ActorID,
			Action:     string(e.Action),
			EntityType: e.EntityType,
			EntityID:   e.EntityID,
			Detail:     e.Detail,
			CreatedAt:  e.CreatedAt.Format(time.RFC3339),
		})
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	response.SuccessWithMeta(w, result, &response.Meta{
		Page:       page,
		Limit:      limit,
		TotalItems: total,
		TotalPages: totalPages,
	})
}
