package user

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/markbates/goth/providers/google"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupOAuth(t *testing.T) *gin.Engine {
	t.Helper()
	gothic.Store = sessions.NewCookieStore([]byte("session-secret-test"))
	goth.UseProviders(google.New(
		"client-id-test",
		"client-secret-test",
		"http://localhost:8080/api/auth/google/callback",
	))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/auth/:provider", BeginAuth)
	return r
}

// Le provider arrive par le chemin, pas par la query : la redirection
// vers Google doit fonctionner quand même.
func TestBeginAuthRedirectsToProviderFromPath(t *testing.T) {
	r := setupOAuth(t)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/google", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusTemporaryRedirect, w.Code)
	location := w.Header().Get("Location")
	assert.Contains(t, location, "accounts.google.com")
	assert.Contains(t, location, "client-id-test")
}

func TestBeginAuthRejectsUnknownProvider(t *testing.T) {
	r := setupOAuth(t)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/facebook", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
