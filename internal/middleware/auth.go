package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/campushub/campus-hub/pkg/auth"
)

const (
	UserIDKey   = "userID"
	UserRoleKey = "userRole"
)

// AuthMiddleware resolves the bearer token into an identity. Requests with
// no usable credential are redirected to login; there is no retry.
func AuthMiddleware(jwtManager *auth.JWTManager, blacklist auth.Blacklist) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractToken(c.Request)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token", "redirect": "/login"})
			c.Abort()
			return
		}

		revoked, err := blacklist.Contains(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not verify token"})
			c.Abort()
			return
		}
		if revoked {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "token is revoked", "redirect": "/login"})
			c.Abort()
			return
		}

		claims, err := jwtManager.Verify(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token", "redirect": "/login"})
			c.Abort()
			return
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid user id", "redirect": "/login"})
			c.Abort()
			return
		}

		c.Set(UserIDKey, userID)
		c.Set(UserRoleKey, claims.Role)
		c.Next()
	}
}

// RequireRoles gates a route to the given roles. A resolved user outside the
// set is sent back home, not to login.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(UserRoleKey)
		for _, r := range roles {
			if r == role {
				c.Next()
				return
			}
		}
		c.JSON(http.StatusForbidden, gin.H{"error": "insufficient role", "redirect": "/"})
		c.Abort()
	}
}

// CurrentUser reads the identity set by AuthMiddleware.
func CurrentUser(c *gin.Context) (uuid.UUID, string) {
	return c.MustGet(UserIDKey).(uuid.UUID), c.GetString(UserRoleKey)
}
