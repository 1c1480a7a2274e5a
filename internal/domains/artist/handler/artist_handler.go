package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hypehouse-backend/internal/domains/artist/model"
	"hypehouse-backend/internal/domains/artist/service"
	"hypehouse-backend/internal/shared/response"
	"hypehouse-backend/internal/shared/utils"
)

type ArtistHandler struct {
	service service.ServiceInterface
}

func NewArtistHandler(service service.ServiceInterface) *ArtistHandler {
	return &ArtistHandler{service: service}
}

// ========================================
// PUBLIC
// ========================================

// ListPublic - GET /artists
func (h *ArtistHandler) ListPublic(c *gin.Context) {
	artists, err := h.service.ListPublic(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, "", artists, &response.Meta{Total: len(artists)})
}

// GetPublic - GET /artists/:slug, luôn 200 (placeholder khi không tìm thấy)
func (h *ArtistHandler) GetPublic(c *gin.Context) {
	artist, err := h.service.GetPublicBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "", artist)
}

// ========================================
// ADMIN
// ========================================

// ListAll - GET /admin/artists
func (h *ArtistHandler) ListAll(c *gin.Context) {
	artists, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, "", artists, &response.Meta{Total: len(artists)})
}

// Options - GET /admin/artists/options
func (h *ArtistHandler) Options(c *gin.Context) {
	options, err := h.service.Options(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "", options)
}

// Get - GET /admin/artists/:id
func (h *ArtistHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	artist, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "", artist)
}

// Create - POST /admin/artists
func (h *ArtistHandler) Create(c *gin.Context) {
	var req model.CreateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	artist, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if response.ClientGone(c) {
		return
	}
	response.Success(c, http.StatusCreated, "Artist created", artist)
}

// Update - PATCH /admin/artists/:id
func (h *ArtistHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req model.UpdateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	artist, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if response.ClientGone(c) {
		return
	}
	response.Success(c, http.StatusOK, "Artist updated", artist)
}

// ToggleActive - POST /admin/artists/:id/toggle-active
func (h *ArtistHandler) ToggleActive(c *gin.Context) {
	h.toggle(c, h.service.ToggleActive)
}

// ToggleFeatured - POST /admin/artists/:id/toggle-featured
func (h *ArtistHandler) ToggleFeatured(c *gin.Context) {
	h.toggle(c, h.service.ToggleFeatured)
}

func (h *ArtistHandler) toggle(c *gin.Context, fn func(ctx context.Context, id uuid.UUID) (*model.Artist, error)) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	artist, err := fn(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if response.ClientGone(c) {
		return
	}
	response.Success(c, http.StatusOK, "Artist updated", artist)
}

// Delete - DELETE /admin/artists/:id?confirm=true
func (h *ArtistHandler) Delete(c *gin.Context) {
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
	response.Success(c, http.StatusOK, "Artist deleted", nil)
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id := utils.ParseStringToUUID(c.Param("id"))
	if id == uuid.Nil {
		response.BadRequest(c, "Invalid artist id")
		return uuid.Nil, false
	}
	return id, true
}

func (h *ArtistHandler) handleError(c *gin.Context, err error) {
	response.DomainError(c, err, model.ToHTTPStatus(err), model.ToErrorCode(err))
}
