package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hypehouse-backend/internal/shared/response"
)

// RequireConfirmation bắt buộc ?confirm=true cho thao tác xóa cứng.
// Thiếu xác nhận thì không có gì bị xóa.
func RequireConfirmation() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Query("confirm") != "true" {
			response.Error(c, http.StatusPreconditionRequired, response.CodeConfirmationRequired,
				"Deletion must be confirmed with ?confirm=true")
			c.Abort()
			return
		}
		c.Next()
	}
}
