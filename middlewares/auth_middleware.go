package middlewares

import (
	"net/http"
	"strings"

	"github.com/BakhatBug/Keto-Slim/utils"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserID = "userID"
	ContextRoles  = "roles"
)

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(authHeader, "Bearer "), true
}

// AuthRequired rejects requests without a valid bearer token and sets the
// caller's id and roles in the context.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		userID, roles, err := utils.ParseJWT(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextRoles, roles)
		c.Next()
	}
}

// OptionalAuth attaches the caller's identity when a valid token is present
// but lets anonymous requests through. Quiz submissions and guest checkout
// use this.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString, ok := bearerToken(c); ok {
			if userID, roles, err := utils.ParseJWT(tokenString); err == nil {
				c.Set(ContextUserID, userID)
				c.Set(ContextRoles, roles)
			}
		}
		c.Next()
	}
}

// RequireRole gates a route behind any one of the given roles. Must run
// after AuthRequired.
func RequireRole(allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, exists := c.Get(ContextRoles)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		roles, _ := raw.([]string)
		for _, role := range roles {
			for _, want := range allowed {
				if role == want {
					c.Next()
					return
				}
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error": "access denied, required roles: " + strings.Join(allowed, ", "),
		})
	}
}

// HasRole reports whether the caller carries the given role.
func HasRole(c *gin.Context, role string) bool {
	raw, exists := c.Get(ContextRoles)
	if !exists {
		return false
	}
	roles, _ := raw.([]string)
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

// CurrentUserID returns the authenticated user's id, if any. Helper for
// handlers running behind OptionalAuth.
func CurrentUserID(c *gin.Context) *uint {
	if raw, exists := c.Get(ContextUserID); exists {
		if id, ok := raw.(uint); ok {
			return &id
		}
	}
	return nil
}
