package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hypehouse-backend/internal/domains/dashboard/service"
	"hypehouse-backend/internal/shared/response"
	"hypehouse-backend/pkg/database"
)

type DashboardHandler struct {
	service service.ServiceInterface
}

func NewDashboardHandler(service service.ServiceInterface) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Summary - GET /admin/dashboard
func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context())
	if err != nil {
		status, code := http.StatusInternalServerError, response.CodeInternal
		if database.IsForbidden(err) {
			status, code = http.StatusForbidden, response.CodeForbidden
		}
		response.DomainError(c, err, status, code)
		return
	}
	response.Success(c, http.StatusOK, "", summary)
}
