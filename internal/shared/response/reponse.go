package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog/log"
)

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorBody  `json:"error,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

type ErrorBody struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

type Meta struct {
	Total int `json:"total"`
}

// Error codes dùng chung giữa các domain
const (
	CodeBadRequest           = "BAD_REQUEST"
	CodeValidationFailed     = "VALIDATION_FAILED"
	CodeUnauthorized         = "UNAUTHORIZED"
	CodeForbidden            = "FORBIDDEN"
	CodeNotFound             = "NOT_FOUND"
	CodeConflict             = "CONFLICT"
	CodeConfirmationRequired = "CONFIRMATION_REQUIRED"
	CodeInternal             = "INTERNAL_ERROR"
)

// Success responses
func Success(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func SuccessWithMeta(c *gin.Context, statusCode int, message string, data interface{}, meta *Meta) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
		Meta:    meta,
	})
}

// Error responses
func Error(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Error: &ErrorBody{
			Code:    code,
			Message: message,
		},
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code, message string, details interface{}) {
	c.JSON(statusCode, Response{
		Success: false,
		Error: &ErrorBody{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// ValidationError render lỗi ozzo thành map field → message.
// Lỗi không phải validation.Errors được trả như BAD_REQUEST thông thường.
func ValidationError(c *gin.Context, err error) {
	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		details := make(map[string]string, len(fieldErrs))
		for field, fe := range fieldErrs {
			details[field] = fe.Error()
		}
		ErrorWithDetails(c, 400, CodeValidationFailed, "Validation failed", details)
		return
	}
	Error(c, 400, CodeBadRequest, err.Error())
}

// Common error responses
func BadRequest(c *gin.Context, message string) {
	Error(c, 400, CodeBadRequest, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Error(c, 401, code, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, 404, CodeNotFound, message)
}

func InternalServerError(c *gin.Context, message string) {
	Error(c, 500, CodeInternal, message)
}

// ClientGone báo request đã bị hủy (client ngắt kết nối); handler không ghi response thành công
func ClientGone(c *gin.Context) bool {
	return c.Request.Context().Err() != nil
}

// DomainError render lỗi trả về từ service của một domain.
// Lỗi validation thành 400 theo field; lỗi 5xx được log, message gốc không lộ ra client.
func DomainError(c *gin.Context, err error, status int, code string) {
	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		ValidationError(c, err)
		return
	}
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).
			Str("request_id", c.GetString("request_id")).
			Str("path", c.FullPath()).
			Msg("request failed")
		InternalServerError(c, "Something went wrong, please try again")
		return
	}
	Error(c, status, code, err.Error())
}
