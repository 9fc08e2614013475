package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"washloop.backend/internal/domain/entities"
	"washloop.backend/pkg/jwt"
)

func TestAuthMiddleware_BearerFlow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwtService := jwt.NewJWTService("secret", time.Minute, time.Hour)

	r := gin.New()
	r.Use(AuthMiddleware(jwtService))
	r.GET("/me", func(c *gin.Context) {
		id, ok := GetUserID(c)
		require.True(t, ok)
		require.NotEqual(t, uuid.Nil, id)
		c.Status(http.StatusNoContent)
	})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("not a bearer token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.Contains(t, w.Body.String(), "Invalid token")
	})

	t.Run("valid token", func(t *testing.T) {
		pair, err := jwtService.GenerateTokenPair(uuid.New(), "dewi@washloop.io", "customer")
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	expired := jwt.NewJWTService("secret", -1*time.Second, time.Hour)
	pair, err := expired.GenerateTokenPair(uuid.New(), "dewi@washloop.io", "customer")
	require.NoError(t, err)

	r := gin.New()
	r.Use(AuthMiddleware(expired))
	r.GET("/me", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "Token has expired")
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwtService := jwt.NewJWTService("secret", time.Minute, time.Hour)

	serve := func(role string, guard gin.HandlerFunc) *httptest.ResponseRecorder {
		r := gin.New()
		r.Use(AuthMiddleware(jwtService), guard)
		r.GET("/guarded", func(c *gin.Context) { c.Status(http.StatusNoContent) })

		pair, err := jwtService.GenerateTokenPair(uuid.New(), "someone@washloop.io", role)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	require.Equal(t, http.StatusNoContent, serve("merchant", RequireMerchant()).Code)
	require.Equal(t, http.StatusForbidden, serve("customer", RequireMerchant()).Code)
	require.Equal(t, http.StatusNoContent, serve("customer", RequireCustomer()).Code)
	require.Equal(t, http.StatusForbidden, serve("merchant", RequireSuperadmin()).Code)
	require.Equal(t, http.StatusNoContent, serve("superadmin", RequireSuperadmin()).Code)
	require.Equal(t, http.StatusNoContent, serve("merchant",
		RequireRole(entities.UserRoleMerchant, entities.UserRoleSuperadmin)).Code)
}

func TestRequireRole_NoAuthContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequireMerchant())
	r.GET("/guarded", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
