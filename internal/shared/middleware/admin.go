package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"hypehouse-backend/internal/shared/response"
	"hypehouse-backend/internal/shared/session"
)

const CodeAdminSessionRequired = "ADMIN_SESSION_REQUIRED"

// AdminGate trả lời câu hỏi "user này có role admin không"
type AdminGate interface {
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
}

// RequireAdmin chặn mọi caller không phải admin.
// Anonymous và user không có role admin nhận cùng một response 401,
// client dựa vào đó để chuyển về trang login.
func RequireAdmin(gate AdminGate) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := session.FromContext(c.Request.Context())
		if !ok {
			denyAdmin(c)
			return
		}

		isAdmin, err := gate.IsAdmin(c.Request.Context(), caller.UserID)
		if err != nil {
			log.Error().Err(err).
				Str("request_id", c.GetString("request_id")).
				Str("user_id", caller.UserID.String()).
				Msg("admin gate lookup failed")
			response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Could not verify admin session")
			c.Abort()
			return
		}
		if !isAdmin {
			denyAdmin(c)
			return
		}

		c.Next()
	}
}

func denyAdmin(c *gin.Context) {
	response.Error(c, http.StatusUnauthorized, CodeAdminSessionRequired, "Admin session required")
	c.Abort()
}
