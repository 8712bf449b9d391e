package http

import (
	"net/http"

	"github.com/workpulse/workpulse-backend-go/internal/domain/audit"
	"github.com/workpulse/workpulse-backend-go/internal/handler/http/response"
	auditService "github.com/workpulse/workpulse-backend-go/internal/service/audit"
)

type AuditHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type auditHandlerImpl struct {
	auditService auditService.AuditService
}

func NewAuditHandler(svc auditService.AuditService) AuditHandler {
	return &auditHandlerImpl{auditService: svc}
}

// List implements AuditHandler.
func (h *auditHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := audit.Filter{
		ActorID: queryString(q.Get("actor_id")),
		Entity:  queryString(q.Get("entity")),
		Page:    queryInt(q.Get("page")),
		Limit:   queryInt(q.Get("limit")),
	}

	result, err := h.auditService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
