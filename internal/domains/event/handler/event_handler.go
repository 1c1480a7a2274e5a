package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hypehouse-backend/internal/domains/event/model"
	"hypehouse-backend/internal/domains/event/service"
	"hypehouse-backend/internal/shared/response"
	"hypehouse-backend/internal/shared/utils"
)

type EventHandler struct {
	service service.ServiceInterface
}

func NewEventHandler(service service.ServiceInterface) *EventHandler {
	return &EventHandler{service: service}
}

// ListPublic - GET /events: {featured, upcoming, past}
func (h *EventHandler) ListPublic(c *gin.Context) {
	listing, err := h.service.ListPublic(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "", listing)
}

// GetPublic - GET /events/:id, luôn 200
func (h *EventHandler) GetPublic(c *gin.Context) {
	event, err := h.service.GetPublic(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "", event)
}

// ListAll - GET /admin/events
func (h *EventHandler) ListAll(c *gin.Context) {
	events, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, "", events, &response.Meta{Total: len(events)})
}

// Get - GET /admin/events/:id
func (h *EventHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	event, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "", event)
}

// Create - POST /admin/events
func (h *EventHandler) Create(c *gin.Context) {
	var req model.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	event, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if response.ClientGone(c) {
		return
	}
	response.Success(c, http.StatusCreated, "Event created", event)
}

// Update - PATCH /admin/events/:id
func (h *EventHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req model.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	event, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if response.ClientGone(c) {
		return
	}
	response.Success(c, http.StatusOK, "Event updated", event)
}

// ToggleActive - POST /admin/events/:id/toggle-active
func (h *EventHandler) ToggleActive(c *gin.Context) {
	h.toggle(c, h.service.ToggleActive)
}

// ToggleFeatured - POST /admin/events/:id/toggle-featured
func (h *EventHandler) ToggleFeatured(c *gin.Context) {
	h.toggle(c, h.service.ToggleFeatured)
}

func (h *EventHandler) toggle(c *gin.Context, fn func(context.Context, uuid.UUID) (*model.Event, error)) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	event, err := fn(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if response.ClientGone(c) {
		return
	}
	response.Success(c, http.StatusOK, "Event updated", event)
}

// Delete - DELETE /admin/events/:id?confirm=true
func (h *EventHandler) Delete(c *gin.Context) {
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
	response.Success(c, http.StatusOK, "Event deleted", nil)
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id := utils.ParseStringToUUID(c.Param("id"))
	if id == uuid.Nil {
		response.BadRequest(c, "Invalid event id")
		return uuid.Nil, false
	}
	return id, true
}

func (h *EventHandler) handleError(c *gin.Context, err error) {
	response.DomainError(c, err, model.ToHTTPStatus(err), model.ToErrorCode(err))
}
