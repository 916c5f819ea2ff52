package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/campus-hub/internal/models"
	"github.com/campushub/campus-hub/pkg/auth"
)

type fakeBlacklist struct {
	revoked map[string]bool
}

func (f *fakeBlacklist) Add(_ context.Context, token string, _ time.Duration) error {
	if f.revoked == nil {
		f.revoked = map[string]bool{}
	}
	f.revoked[token] = true
	return nil
}

func (f *fakeBlacklist) Contains(_ context.Context, token string) (bool, error) {
	return f.revoked[token], nil
}

type downBlacklist struct{}

func (downBlacklist) Add(context.Context, string, time.Duration) error { return nil }

func (downBlacklist) Contains(context.Context, string) (bool, error) {
	return false, errors.New("redis: connection refused")
}

func newGatedRouter(t *testing.T, jwtm *auth.JWTManager, bl auth.Blacklist, roles ...string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	grp := r.Group("/", AuthMiddleware(jwtm, bl))
	if len(roles) > 0 {
		grp.Use(RequireRoles(roles...))
	}
	grp.GET("/protected", func(c *gin.Context) {
		id, role := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"id": id, "role": role})
	})
	return r
}

func get(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestAuthMiddleware(t *testing.T) {
	jwtm := auth.NewJWTManager("test-secret", time.Hour)
	bl := &fakeBlacklist{}

	token, err := jwtm.Generate("5f0c3f9e-9f64-4d2a-97e8-17a5f6d0a001", models.RoleStudent)
	require.NoError(t, err)

	r := newGatedRouter(t, jwtm, bl)

	t.Run("no token redirects to login", func(t *testing.T) {
		rr := get(r, "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), `"redirect":"/login"`)
	})

	t.Run("garbage token redirects to login", func(t *testing.T) {
		rr := get(r, "not-a-jwt")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("valid token passes", func(t *testing.T) {
		rr := get(r, token)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), models.RoleStudent)
	})

	t.Run("revoked token redirects to login", func(t *testing.T) {
		require.NoError(t, bl.Add(context.Background(), token, time.Hour))
		rr := get(r, token)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("blacklist backend failure is a server error", func(t *testing.T) {
		down := newGatedRouter(t, jwtm, downBlacklist{})
		rr := get(down, token)
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "revoked")
	})
}

func TestRequireRoles(t *testing.T) {
	jwtm := auth.NewJWTManager("test-secret", time.Hour)
	bl := &fakeBlacklist{}

	student, err := jwtm.Generate("5f0c3f9e-9f64-4d2a-97e8-17a5f6d0a001", models.RoleStudent)
	require.NoError(t, err)
	admin, err := jwtm.Generate("5f0c3f9e-9f64-4d2a-97e8-17a5f6d0a002", models.RoleAdmin)
	require.NoError(t, err)

	adminOnly := newGatedRouter(t, jwtm, bl, models.RoleAdmin)
	anyRole := newGatedRouter(t, jwtm, bl, models.RoleStudent, models.RoleAdmin)

	t.Run("student blocked from admin route, sent home", func(t *testing.T) {
		rr := get(adminOnly, student)
		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Contains(t, rr.Body.String(), `"redirect":"/"`)
	})

	t.Run("admin passes admin route", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, get(adminOnly, admin).Code)
	})

	t.Run("both roles pass shared route", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, get(anyRole, student).Code)
		assert.Equal(t, http.StatusOK, get(anyRole, admin).Code)
	})
}
