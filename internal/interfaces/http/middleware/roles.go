package middleware

import (
	"net/http"

	"github.com/bistro/backend/internal/domain/access"
	"github.com/bistro/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// RequireAction returns a middleware that authorizes the authenticated
// actor for the given action before the handler runs
func RequireAction(action access.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.ErrCodeUnauthorized, "Not authenticated"))
			return
		}

		if err := access.Authorize(actor, action); err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse(dto.ErrCodeForbidden, "Access to this resource is forbidden"))
			return
		}

		c.Next()
	}
}

// RequireManager restricts a route to managers
func RequireManager() gin.HandlerFunc {
	return RequireAction(access.ActionManageGroups)
}
