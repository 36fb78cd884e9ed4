package handler

import (
	"net/http"

	"medical-appointment-api/internal/delivery/http/middleware"
	"medical-appointment-api/internal/usecase"
	"medical-appointment-api/pkg/response"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogUsecase: auditLogUsecase,
	}
}

// ListActivity returns the authenticated user's recent audit entries.
func (h *AuditLogHandler) ListActivity(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.GetUserEmailFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	activity, err := h.auditLogUsecase.ListActivity(r.Context(), email)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "", response.Fields{"logs": activity.Logs, "total": activity.Total})
}
