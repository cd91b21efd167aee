package middleware

import (
	"net/http"

	"github.com/filmvault-api/dto"
	"github.com/filmvault-api/models"
	"github.com/gin-gonic/gin"
)

// The gates fail closed with a bare denial: no detail leaks about
// whether the resource exists or what exactly was missing.

func deny(c *gin.Context) {
	c.JSON(http.StatusForbidden, gin.H{
		"status":  "error",
		"message": "forbidden",
	})
	c.Abort()
}

// RequireAuth passes only requests whose context carries verified
// access-token claims. Refresh tokens may not authorize access to
// protected resources.
func RequireAuth() gin.HandlerFunc {
	return requireTokenType(dto.TokenTypeAccess)
}

// RequireRefreshToken passes only requests authenticated with a
// refresh token; used by the access-token exchange endpoint.
func RequireRefreshToken() gin.HandlerFunc {
	return requireTokenType(dto.TokenTypeRefresh)
}

func requireTokenType(tokenType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := ClaimsFromContext(c)
		if !ok || claims.Type != tokenType {
			deny(c)
			return
		}
		c.Next()
	}
}

// RequireRole enforces a per-route minimum role. Roles are ordinal with
// lower values carrying more privilege, so the principal passes when
// its role value is <= the required one. Requires access-token claims.
func RequireRole(required models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := ClaimsFromContext(c)
		if !ok || claims.Type != dto.TokenTypeAccess {
			deny(c)
			return
		}
		if claims.Role > required {
			deny(c)
			return
		}
		c.Next()
	}
}
