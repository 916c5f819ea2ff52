package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/campushub/campus-hub/internal/database"
	"github.com/campushub/campus-hub/internal/handlers/dto"
	"github.com/campushub/campus-hub/internal/middleware"
	"github.com/campushub/campus-hub/internal/models"
	"github.com/campushub/campus-hub/pkg/auth"
)

type AuthHandler struct {
	repo       database.Repository
	jwtManager *auth.JWTManager
	blacklist  auth.Blacklist
}

func NewAuthHandler(repo database.Repository, jwtMgr *auth.JWTManager, blacklist auth.Blacklist) *AuthHandler {
	return &AuthHandler{repo: repo, jwtManager: jwtMgr, blacklist: blacklist}
}

// Register creates a student account. Admin accounts are seeded out of band.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cannot hash password"})
		return
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         models.RoleStudent,
		CreatedAt:    time.Now(),
	}

	if err := h.repo.SaveUser(user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "user registered"})
}

// Login issues a JWT carrying the user's id and role.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.repo.FindUserByEmail(req.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	if err := h.repo.UpdateLastSeen(user.ID.String()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update last seen"})
		return
	}

	token, err := h.jwtManager.Generate(user.ID.String(), user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token: token,
		User: dto.UserInfo{
			ID:        user.ID,
			Name:      user.DisplayName(),
			Email:     user.Email,
			Role:      user.Role,
			CreatedAt: user.CreatedAt,
		},
	})
}

// Logout revokes the token until its natural expiry.
func (h *AuthHandler) Logout(c *gin.Context) {
	rawToken, err := auth.ExtractToken(c.Request)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	exp, err := h.jwtManager.Expiry(rawToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	if err := h.blacklist.Add(c.Request.Context(), rawToken, time.Until(exp)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not revoke token"})
		return
	}

	c.Status(http.StatusOK)
}

// Me returns the resolved identity behind the current token.
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	user, err := h.repo.GetUser(userID.String())
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, dto.UserInfo{
		ID:        user.ID,
		Name:      user.DisplayName(),
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	})
}
