package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hypehouse-backend/internal/domains/demo/model"
	"hypehouse-backend/internal/domains/demo/service"
	"hypehouse-backend/internal/shared/response"
	"hypehouse-backend/internal/shared/utils"
	"hypehouse-backend/pkg/logger"
	"hypehouse-backend/pkg/metrics"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type DemoHandler struct {
	service service.ServiceInterface
	metrics *metrics.Metrics
}

func NewDemoHandler(service service.ServiceInterface, m *metrics.Metrics) *DemoHandler {
	return &DemoHandler{service: service, metrics: m}
}

// Submit - POST /demos (public)
func (h *DemoHandler) Submit(c *gin.Context) {
	var req model.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.service.Submit(c.Request.Context(), req); err != nil {
		h.handleError(c, err)
		return
	}
	h.metrics.RecordDemoSubmission()
	if response.ClientGone(c) {
		return
	}

	logger.Info("demo submitted", map[string]interface{}{
		"genre":      req.Genre,
		"request_id": c.GetString("request_id"),
	})
	response.Success(c, http.StatusCreated, "Thanks! We'll listen and get back to you.", model.SubmitResponse{Submitted: true})
}

// List - GET /admin/demos?status=all|pending|reviewed|accepted|rejected
func (h *DemoHandler) List(c *gin.Context) {
	subs, err := h.service.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, "", subs, &response.Meta{Total: len(subs)})
}

// UpdateStatus - PATCH /admin/demos/:id/status
func (h *DemoHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req model.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	sub, err := h.service.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if response.ClientGone(c) {
		return
	}
	response.Success(c, http.StatusOK, "Status updated", sub)
}

// UpdateNotes - PATCH /admin/demos/:id/notes
func (h *DemoHandler) UpdateNotes(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req model.UpdateNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	sub, err := h.service.UpdateNotes(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if response.ClientGone(c) {
		return
	}
	response.Success(c, http.StatusOK, "Notes saved", sub)
}

// Delete - DELETE /admin/demos/:id?confirm=true
func (h *DemoHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	if response.ClientGone(c) {
		return
	}
	response.Success(c, http.StatusOK, "Demo submission deleted", nil)
}

// Export - GET /admin/demos/export?status=
func (h *DemoHandler) Export(c *gin.Context) {
	f, err := h.service.Export(c.Request.Context(), c.Query("status"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("demo-submissions-%s.xlsx", time.Now().UTC().Format("20060102-150405"))
	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Status(http.StatusOK)
	if err := f.Write(c.Writer); err != nil {
		logger.Error("write demo export", err)
	}
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id := utils.ParseStringToUUID(c.Param("id"))
	if id == uuid.Nil {
		response.BadRequest(c, "Invalid demo submission id")
		return uuid.Nil, false
	}
	return id, true
}

func (h *DemoHandler) handleError(c *gin.Context, err error) {
	response.DomainError(c, err, model.ToHTTPStatus(err), model.ToErrorCode(err))
}
