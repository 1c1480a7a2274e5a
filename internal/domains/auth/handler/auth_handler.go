package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hypehouse-backend/internal/domains/auth/model"
	"hypehouse-backend/internal/domains/auth/service"
	"hypehouse-backend/internal/shared/middleware"
	"hypehouse-backend/internal/shared/response"
	"hypehouse-backend/internal/shared/session"
	"hypehouse-backend/pkg/logger"
	"hypehouse-backend/pkg/metrics"
)

// AuthHandler xử lý login/logout và session của admin shell
type AuthHandler struct {
	service service.ServiceInterface
	metrics *metrics.Metrics
}

func NewAuthHandler(service service.ServiceInterface, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{service: service, metrics: m}
}

// Login xử lý POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	// STEP 1: PARSE REQUEST
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	// STEP 2: VALIDATE
	if err := req.Validate(); err != nil {
		response.ValidationError(c, err)
		return
	}

	// STEP 3: AUTHENTICATE
	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrTooManyAttempts):
			h.metrics.RecordLogin(metrics.LoginLocked)
		case errors.Is(err, model.ErrInvalidCredentials):
			h.metrics.RecordLogin(metrics.LoginFailed)
		}
		h.handleError(c, err)
		return
	}
	h.metrics.RecordLogin(metrics.LoginSuccess)

	logger.Info("admin signed in", map[string]interface{}{
		"user_id":    res.Session.UserID.String(),
		"request_id": c.GetString("request_id"),
	})
	response.Success(c, http.StatusOK, "Signed in", res)
}

// Logout xử lý POST /auth/logout; token hiện tại bị revoke
func (h *AuthHandler) Logout(c *gin.Context) {
	caller, ok := session.FromContext(c.Request.Context())
	if !ok {
		response.Unauthorized(c, middleware.CodeAdminSessionRequired, "Admin session required")
		return
	}

	if err := h.service.Logout(c.Request.Context(), caller); err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Signed out", nil)
}

// Session xử lý GET /admin/session
func (h *AuthHandler) Session(c *gin.Context) {
	caller, ok := session.FromContext(c.Request.Context())
	if !ok {
		response.Unauthorized(c, middleware.CodeAdminSessionRequired, "Admin session required")
		return
	}

	info, err := h.service.Session(c.Request.Context(), caller)
	if err != nil {
		// Identity đã bị xóa: client xử lý như hết session
		if errors.Is(err, model.ErrUserNotFound) {
			response.Unauthorized(c, middleware.CodeAdminSessionRequired, "Admin session required")
			return
		}
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "", info)
}

func (h *AuthHandler) handleError(c *gin.Context, err error) {
	status := model.ToHTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logger.Error("auth request failed", err)
		response.InternalServerError(c, "Could not complete the request")
		return
	}
	response.Error(c, status, model.ToErrorCode(err), err.Error())
}
