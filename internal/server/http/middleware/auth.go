package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vitrinepdv/vitrine/internal/domain/model"
	pkgAuth "github.com/vitrinepdv/vitrine/internal/pkg/auth"
)

const (
	// StaffIDContextKey is a gin context key for the authenticated staff id.
	StaffIDContextKey = "staffID"
	// StaffRoleContextKey is a gin context key for the authenticated role.
	StaffRoleContextKey = "staffRole"
	authCookieName      = "vitrine_token"
)

// TokenParser validates staff tokens for the auth middleware.
type TokenParser interface {
	ParseToken(token string) (int64, model.StaffRole, error)
}

// AuthRequired ensures a staff member is authenticated before the handler.
func AuthRequired(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		staffID, role, err := parser.ParseToken(token)
		if err != nil {
			if errors.Is(err, pkgAuth.ErrInvalidToken) {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Set(StaffIDContextKey, staffID)
		c.Set(StaffRoleContextKey, role)
		c.Next()
	}
}

// RoleRequired gates a route group on a staff role. Must run after
// AuthRequired.
func RoleRequired(role model.StaffRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		val, ok := c.Get(StaffRoleContextKey)
		if !ok {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		if current, _ := val.(model.StaffRole); current != role {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetAuthCookie writes auth token cookie to response.
func SetAuthCookie(c *gin.Context, token string) {
	c.SetCookie(authCookieName, token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}
