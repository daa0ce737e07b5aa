package admin

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vastra_back_end/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/admin/login", Login)
	r.GET("/api/admin/check-auth", middleware.AdminAuthRequired(), CheckAuth)
	return r
}

func login(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdminLoginSetsCookie(t *testing.T) {
	t.Setenv("ADMIN_USERNAME", "admin")
	t.Setenv("ADMIN_PASSWORD", "s3cret")
	t.Setenv("JWT_SECRET", "test-secret")

	r := setupRouter()
	w := login(r, `{"username":"admin","password":"s3cret"}`)

	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, "adminToken", cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestAdminLoginRejectsBadCredentials(t *testing.T) {
	t.Setenv("ADMIN_USERNAME", "admin")
	t.Setenv("ADMIN_PASSWORD", "s3cret")
	t.Setenv("JWT_SECRET", "test-secret")

	r := setupRouter()

	w := login(r, `{"username":"admin","password":"mauvais"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Result().Cookies())
}

func TestCheckAuthAcceptsOwnCookie(t *testing.T) {
	t.Setenv("ADMIN_USERNAME", "admin")
	t.Setenv("ADMIN_PASSWORD", "s3cret")
	t.Setenv("JWT_SECRET", "test-secret")

	r := setupRouter()
	w := login(r, `{"username":"admin","password":"s3cret"}`)
	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/check-auth", nil)
	req.AddCookie(cookies[0])
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req)

	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Contains(t, w2.Body.String(), "admin")
}

func TestCheckAuthRejectsMissingCookie(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	r := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/admin/check-auth", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCheckAuthRejectsForgedToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	r := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/admin/check-auth", nil)
	req.AddCookie(&http.Cookie{Name: "adminToken", Value: "pas.un.jwt"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
