package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, err error, status int, code string) (int, Response) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	DomainError(c, err, status, code)

	var body Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestDomainError(t *testing.T) {
	t.Run("client errors keep the domain message", func(t *testing.T) {
		status, body := render(t, errors.New("slug already in use"), http.StatusConflict, "DUPLICATE_SLUG")
		assert.Equal(t, http.StatusConflict, status)
		assert.Equal(t, "DUPLICATE_SLUG", body.Error.Code)
		assert.Equal(t, "slug already in use", body.Error.Message)
	})

	t.Run("server errors are masked", func(t *testing.T) {
		dbErr := errors.New(`ERROR: relation "artists" does not exist (SQLSTATE 42P01)`)
		status, body := render(t, dbErr, http.StatusInternalServerError, "INTERNAL_ERROR")
		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, CodeInternal, body.Error.Code)
		assert.NotContains(t, body.Error.Message, "SQLSTATE")
	})

	t.Run("validation errors become field details", func(t *testing.T) {
		verr := validation.Errors{"name": errors.New("cannot be blank")}
		status, body := render(t, verr, http.StatusInternalServerError, "INTERNAL_ERROR")
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, CodeValidationFailed, body.Error.Code)
		assert.Equal(t, map[string]interface{}{"name": "cannot be blank"}, body.Error.Details)
	})
}
