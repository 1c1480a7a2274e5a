package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hypehouse-backend/internal/shared/session"
	"hypehouse-backend/pkg/metrics"
)

type fakeVerifier struct {
	tokens map[string]session.Caller
}

func (f *fakeVerifier) VerifyAccessToken(_ context.Context, token string) (session.Caller, error) {
	caller, ok := f.tokens[token]
	if !ok {
		return session.Caller{}, errors.New("invalid token")
	}
	return caller, nil
}

type fakeGate struct {
	admins map[uuid.UUID]bool
	err    error
	calls  int
}

func (g *fakeGate) IsAdmin(_ context.Context, userID uuid.UUID) (bool, error) {
	g.calls++
	if g.err != nil {
		return false, g.err
	}
	return g.admins[userID], nil
}

type envelope struct {
	Success bool `json:"success"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newAdminRouter(verifier TokenVerifier, gate AdminGate) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Authenticate(verifier))
	r.GET("/public", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": session.UserID(c.Request.Context()).String()})
	})
	r.GET("/admin", RequireAdmin(gate), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	r.DELETE("/admin/thing", RequireAdmin(gate), RequireConfirmation(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func doRequest(r http.Handler, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticate_InvalidTokenIsAnonymous(t *testing.T) {
	r := newAdminRouter(&fakeVerifier{tokens: map[string]session.Caller{}}, &fakeGate{})

	w := doRequest(r, http.MethodGet, "/public", "garbage")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), uuid.Nil.String())
}

func TestRequireAdmin_SameResponseForAnonymousAndNonAdmin(t *testing.T) {
	admin := uuid.New()
	member := uuid.New()
	verifier := &fakeVerifier{tokens: map[string]session.Caller{
		"admin-token":  {UserID: admin},
		"member-token": {UserID: member},
	}}
	gate := &fakeGate{admins: map[uuid.UUID]bool{admin: true}}
	r := newAdminRouter(verifier, gate)

	anon := doRequest(r, http.MethodGet, "/admin", "")
	nonAdmin := doRequest(r, http.MethodGet, "/admin", "member-token")
	expired := doRequest(r, http.MethodGet, "/admin", "expired-token")

	for _, w := range []*httptest.ResponseRecorder{anon, nonAdmin, expired} {
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		var body envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.NotNil(t, body.Error)
		assert.Equal(t, CodeAdminSessionRequired, body.Error.Code)
	}
	assert.Equal(t, anon.Body.String(), nonAdmin.Body.String())

	ok := doRequest(r, http.MethodGet, "/admin", "admin-token")
	assert.Equal(t, http.StatusOK, ok.Code)
}

func TestRequireAdmin_GateErrorDenies(t *testing.T) {
	user := uuid.New()
	verifier := &fakeVerifier{tokens: map[string]session.Caller{"t": {UserID: user}}}
	r := newAdminRouter(verifier, &fakeGate{err: errors.New("connection refused")})

	w := doRequest(r, http.MethodGet, "/admin", "t")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRequireConfirmation(t *testing.T) {
	admin := uuid.New()
	verifier := &fakeVerifier{tokens: map[string]session.Caller{"t": {UserID: admin}}}
	r := newAdminRouter(verifier, &fakeGate{admins: map[uuid.UUID]bool{admin: true}})

	w := doRequest(r, http.MethodDelete, "/admin/thing", "t")
	assert.Equal(t, http.StatusPreconditionRequired, w.Code)
	assert.Contains(t, w.Body.String(), "CONFIRMATION_REQUIRED")

	w = doRequest(r, http.MethodDelete, "/admin/thing?confirm=true", "t")
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestExtractIPAddress(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.7:51234"
	assert.Equal(t, "10.0.0.7", extractIPAddress(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	assert.Equal(t, "203.0.113.9", extractIPAddress(req))

	req.Header.Set("X-Real-IP", "198.51.100.4")
	assert.Equal(t, "198.51.100.4", extractIPAddress(req))
}

func TestRecovery_PanicBecomesEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), Recovery())
	r.GET("/boom", func(c *gin.Context) { panic("nil map write") })

	w := doRequest(r, http.MethodGet, "/boom", "")
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var body envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORS([]string{"https://hypehouse.example/"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "https://hypehouse.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://hypehouse.example", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetrics_RecordsRoutePattern(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := metrics.New("test")
	r := gin.New()
	r.Use(Metrics(m))
	r.GET("/artists/:slug", func(c *gin.Context) { c.Status(http.StatusOK) })

	doRequest(r, http.MethodGet, "/artists/kaia", "")
	doRequest(r, http.MethodGet, "/artists/marcus-wave", "")

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, w.Body.String(), `test_http_requests_total{method="GET",route="/artists/:slug",status="200"} 2`)
}
