package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hypehouse-backend/internal/domains/promo/model"
	"hypehouse-backend/internal/domains/promo/service"
	"hypehouse-backend/internal/shared/response"
	"hypehouse-backend/internal/shared/utils"
)

type PromoHandler struct {
	service service.ServiceInterface
}

func NewPromoHandler(service service.ServiceInterface) *PromoHandler {
	return &PromoHandler{service: service}
}

// ListPublic - GET /promos?zone=top|bottom; danh sách rỗng vẫn là 200
func (h *PromoHandler) ListPublic(c *gin.Context) {
	slides, err := h.service.ListPublic(c.Request.Context(), c.Query("zone"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, "", slides, &response.Meta{Total: len(slides)})
}

// ListAll - GET /admin/promos
func (h *PromoHandler) ListAll(c *gin.Context) {
	slides, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, "", slides, &response.Meta{Total: len(slides)})
}

// Get - GET /admin/promos/:id
func (h *PromoHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	slide, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "", slide)
}

// Create - POST /admin/promos
func (h *PromoHandler) Create(c *gin.Context) {
	var req model.CreateSlideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	slide, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if response.ClientGone(c) {
		return
	}
	response.Success(c, http.StatusCreated, "Promo slide created", slide)
}

// Update - PATCH /admin/promos/:id
func (h *PromoHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req model.UpdateSlideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	slide, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if response.ClientGone(c) {
		return
	}
	response.Success(c, http.StatusOK, "Promo slide updated", slide)
}

// ToggleActive - POST /admin/promos/:id/toggle-active
func (h *PromoHandler) ToggleActive(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	slide, err := h.service.ToggleActive(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if response.ClientGone(c) {
		return
	}
	response.Success(c, http.StatusOK, "Promo slide updated", slide)
}

// Delete - DELETE /admin/promos/:id?confirm=true
func (h *PromoHandler) Delete(c *gin.Context) {
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
	response.Success(c, http.StatusOK, "Promo slide deleted", nil)
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id := utils.ParseStringToUUID(c.Param("id"))
	if id == uuid.Nil {
		response.BadRequest(c, "Invalid promo slide id")
		return uuid.Nil, false
	}
	return id, true
}

func (h *PromoHandler) handleError(c *gin.Context, err error) {
	response.DomainError(c, err, model.ToHTTPStatus(err), model.ToErrorCode(err))
}
