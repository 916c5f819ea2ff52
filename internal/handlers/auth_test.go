package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/campushub/campus-hub/internal/database"
	"github.com/campushub/campus-hub/internal/handlers/dto"
	"github.com/campushub/campus-hub/internal/models"
	"github.com/campushub/campus-hub/pkg/auth"
)

type memBlacklist struct{ revoked map[string]bool }

func (b *memBlacklist) Add(_ context.Context, token string, _ time.Duration) error {
	if b.revoked == nil {
		b.revoked = map[string]bool{}
	}
	b.revoked[token] = true
	return nil
}

func (b *memBlacklist) Contains(_ context.Context, token string) (bool, error) {
	return b.revoked[token], nil
}

func authRouter(repo database.Repository, bl auth.Blacklist) (*gin.Engine, *auth.JWTManager) {
	gin.SetMode(gin.TestMode)
	jwtm := auth.NewJWTManager("test-secret", time.Hour)
	h := NewAuthHandler(repo, jwtm, bl)

	r := gin.New()
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
	r.POST("/auth/logout", h.Logout)
	return r, jwtm
}

func TestRegister(t *testing.T) {
	repo := &database.MockRepository{}
	defer repo.AssertExpectations(t)

	repo.On("SaveUser", mock.MatchedBy(func(u *models.User) bool {
		return u.Email == "priya@campus.edu" &&
			u.Role == models.RoleStudent &&
			bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("hunter2hunter2")) == nil
	})).Return(nil).Once()

	r, _ := authRouter(repo, &memBlacklist{})
	rr := doJSON(r, http.MethodPost, "/auth/register", gin.H{
		"name":     "Priya",
		"email":    "priya@campus.edu",
		"password": "hunter2hunter2",
	})
	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	repo := &database.MockRepository{}
	r, _ := authRouter(repo, &memBlacklist{})

	rr := doJSON(r, http.MethodPost, "/auth/register", gin.H{
		"name":     "Priya",
		"email":    "priya@campus.edu",
		"password": "short",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	repo.AssertNotCalled(t, "SaveUser", mock.Anything)
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2hunter2"), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := &models.User{
		ID:           uuid.New(),
		Name:         "Priya",
		Email:        "priya@campus.edu",
		PasswordHash: string(hash),
		Role:         models.RoleStudent,
	}

	t.Run("valid credentials issue a role-bearing token", func(t *testing.T) {
		repo := &database.MockRepository{}
		defer repo.AssertExpectations(t)
		repo.On("FindUserByEmail", user.Email).Return(user, nil).Once()
		repo.On("UpdateLastSeen", user.ID.String()).Return(nil).Once()

		r, jwtm := authRouter(repo, &memBlacklist{})
		rr := doJSON(r, http.MethodPost, "/auth/login", gin.H{
			"email":    user.Email,
			"password": "hunter2hunter2",
		})
		require.Equal(t, http.StatusOK, rr.Code)

		var resp dto.LoginResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, user.ID, resp.User.ID)

		claims, err := jwtm.Verify(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, user.ID.String(), claims.Subject)
		assert.Equal(t, models.RoleStudent, claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := &database.MockRepository{}
		defer repo.AssertExpectations(t)
		repo.On("FindUserByEmail", user.Email).Return(user, nil).Once()

		r, _ := authRouter(repo, &memBlacklist{})
		rr := doJSON(r, http.MethodPost, "/auth/login", gin.H{
			"email":    user.Email,
			"password": "wrong-password",
		})
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("unknown email", func(t *testing.T) {
		repo := &database.MockRepository{}
		defer repo.AssertExpectations(t)
		repo.On("FindUserByEmail", "ghost@campus.edu").
			Return(nil, gorm.ErrRecordNotFound).Once()

		r, _ := authRouter(repo, &memBlacklist{})
		rr := doJSON(r, http.MethodPost, "/auth/login", gin.H{
			"email":    "ghost@campus.edu",
			"password": "hunter2hunter2",
		})
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func doJSONWithAuth(r *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestLogoutRevokesToken(t *testing.T) {
	repo := &database.MockRepository{}
	bl := &memBlacklist{}
	r, jwtm := authRouter(repo, bl)

	token, err := jwtm.Generate(uuid.New().String(), models.RoleStudent)
	require.NoError(t, err)

	req := doJSONWithAuth(r, http.MethodPost, "/auth/logout", nil, token)
	assert.Equal(t, http.StatusOK, req.Code)

	revoked, err := bl.Contains(context.Background(), token)
	require.NoError(t, err)
	assert.True(t, revoked)
}
