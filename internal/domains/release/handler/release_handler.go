package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	artistmodel "hypehouse-backend/internal/domains/artist/model"
	"hypehouse-backend/internal/domains/release/model"
	"hypehouse-backend/internal/domains/release/service"
	"hypehouse-backend/internal/shared/response"
	"hypehouse-backend/internal/shared/utils"
)

// ArtistOptions cung cấp dropdown chọn artist cho màn hình music
type ArtistOptions interface {
	Options(ctx context.Context) ([]artistmodel.Option, error)
}

type ReleaseHandler struct {
	service service.ServiceInterface
	artists ArtistOptions
}

func NewReleaseHandler(service service.ServiceInterface, artists ArtistOptions) *ReleaseHandler {
	return &ReleaseHandler{service: service, artists: artists}
}

// ListPublic - GET /releases?genre=
func (h *ReleaseHandler) ListPublic(c *gin.Context) {
	releases, err := h.service.ListPublic(c.Request.Context(), c.Query("genre"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, "", releases, &response.Meta{Total: len(releases)})
}

// MusicScreen là dữ liệu của màn hình admin music
type MusicScreen struct {
	Releases []model.Release      `json:"releases"`
	Artists  []artistmodel.Option `json:"artists"`
}

// MusicScreen - GET /admin/music: releases và artist options lấy song song
func (h *ReleaseHandler) MusicScreen(c *gin.Context) {
	var screen MusicScreen
	g, ctx := errgroup.WithContext(c.Request.Context())

	g.Go(func() error {
		releases, err := h.service.ListAll(ctx)
		screen.Releases = releases
		return err
	})
	g.Go(func() error {
		artists, err := h.artists.Options(ctx)
		screen.Artists = artists
		return err
	})

	if err := g.Wait(); err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "", screen)
}

// ListAll - GET /admin/releases
func (h *ReleaseHandler) ListAll(c *gin.Context) {
	releases, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, "", releases, &response.Meta{Total: len(releases)})
}

// Get - GET /admin/releases/:id
func (h *ReleaseHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	rel, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "", rel)
}

// Create - POST /admin/releases
func (h *ReleaseHandler) Create(c *gin.Context) {
	var req model.CreateReleaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	rel, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if response.ClientGone(c) {
		return
	}
	response.Success(c, http.StatusCreated, "Release created", rel)
}

// Update - PATCH /admin/releases/:id
func (h *ReleaseHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req model.UpdateReleaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	rel, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if response.ClientGone(c) {
		return
	}
	response.Success(c, http.StatusOK, "Release updated", rel)
}

// ToggleActive - POST /admin/releases/:id/toggle-active
func (h *ReleaseHandler) ToggleActive(c *gin.Context) {
	h.toggle(c, h.service.ToggleActive)
}

// ToggleFeatured - POST /admin/releases/:id/toggle-featured
func (h *ReleaseHandler) ToggleFeatured(c *gin.Context) {
	h.toggle(c, h.service.ToggleFeatured)
}

func (h *ReleaseHandler) toggle(c *gin.Context, fn func(context.Context, uuid.UUID) (*model.Release, error)) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	rel, err := fn(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if response.ClientGone(c) {
		return
	}
	response.Success(c, http.StatusOK, "Release updated", rel)
}

// Delete - DELETE /admin/releases/:id?confirm=true
func (h *ReleaseHandler) Delete(c *gin.Context) {
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
	response.Success(c, http.StatusOK, "Release deleted", nil)
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id := utils.ParseStringToUUID(c.Param("id"))
	if id == uuid.Nil {
		response.BadRequest(c, "Invalid release id")
		return uuid.Nil, false
	}
	return id, true
}

func (h *ReleaseHandler) handleError(c *gin.Context, err error) {
	response.DomainError(c, err, model.ToHTTPStatus(err), model.ToErrorCode(err))
}
