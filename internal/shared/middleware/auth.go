package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"hypehouse-backend/internal/shared/session"
)

// TokenVerifier kiểm tra access token (chữ ký, hạn, revoke) và trả về caller
type TokenVerifier interface {
	VerifyAccessToken(ctx context.Context, token string) (session.Caller, error)
}

// Authenticate gắn caller vào request context nếu có Bearer token hợp lệ.
// Không bao giờ reject: token thiếu, sai format, hết hạn hay đã revoke
// đều được xử lý như anonymous. RequireAdmin quyết định quyền truy cập.
func Authenticate(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.Next()
			return
		}

		caller, err := verifier.VerifyAccessToken(c.Request.Context(), token)
		if err != nil {
			c.Next()
			return
		}

		c.Set("userID", caller.UserID)
		c.Request = c.Request.WithContext(session.WithCaller(c.Request.Context(), caller))
		c.Next()
	}
}

// bearerToken extract token từ "Bearer <token>"
func bearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}
