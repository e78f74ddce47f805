package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pawlig/backend/internal/domain/identity"
	"github.com/pawlig/backend/internal/interfaces/http/dto"
)

// RequireRoles returns a middleware that rejects requests whose JWT role
// is not in the allowed set. It must run after JWTAuthMiddleware; a
// request without claims is treated as unauthenticated.
func RequireRoles(roles ...identity.Role) gin.HandlerFunc {
	allowed := make(map[identity.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		role := GetJWTRole(c)
		if role == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.ErrCodeUnauthorized, "Authentication required"))
			return
		}

		if _, ok := allowed[identity.Role(role)]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse(dto.ErrCodeForbidden, "Insufficient role for this operation"))
			return
		}

		c.Next()
	}
}

// RequireCapability returns a middleware that rejects requests whose JWT
// role does not hold the given capability. It must run after
// JWTAuthMiddleware.
func RequireCapability(capability identity.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := GetJWTRole(c)
		if role == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.ErrCodeUnauthorized, "Authentication required"))
			return
		}

		if !identity.Role(role).Can(capability) {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse(dto.ErrCodeForbidden, "Insufficient role for this operation"))
			return
		}

		c.Next()
	}
}
