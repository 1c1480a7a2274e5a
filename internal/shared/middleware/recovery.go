package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"hypehouse-backend/internal/shared/response"
)

// Recovery chặn panic của handler, log kèm stack và trả envelope 500 chuẩn
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			log.Error().
				Str("request_id", c.GetString("request_id")).
				Str("path", c.Request.URL.Path).
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")

			if !c.Writer.Written() {
				response.InternalServerError(c, "Something went wrong, please try again")
			}
			c.AbortWithStatus(http.StatusInternalServerError)
		}()

		c.Next()
	}
}
