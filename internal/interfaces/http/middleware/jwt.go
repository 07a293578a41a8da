package middleware

import (
	"net/http"
	"strings"

	"github.com/bistro/backend/internal/domain/access"
	"github.com/bistro/backend/internal/domain/identity"
	"github.com/bistro/backend/internal/infrastructure/auth"
	"github.com/bistro/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// JWT context keys
const (
	JWTClaimsKey   = "jwt_claims"
	JWTUserIDKey   = "jwt_user_id"
	JWTUsernameKey = "jwt_username"
	JWTRolesKey    = "jwt_roles"
	AuthHeaderKey  = "Authorization"
	BearerPrefix   = "Bearer "
)

// JWTConfig holds configuration for the JWT middleware
type JWTConfig struct {
	JWTService *auth.JWTService
	// SkipPaths are paths that don't require authentication
	SkipPaths []string
}

// DefaultJWTConfig returns the default JWT middleware configuration
func DefaultJWTConfig(jwtService *auth.JWTService) JWTConfig {
	return JWTConfig{
		JWTService: jwtService,
		SkipPaths: []string{
			"/health",
			"/api/v1/health",
			"/api/v1/auth/register",
			"/api/v1/auth/login",
			"/api/v1/auth/refresh",
		},
	}
}

// JWTAuth creates JWT authentication middleware
func JWTAuth(jwtService *auth.JWTService) gin.HandlerFunc {
	return JWTAuthWithConfig(DefaultJWTConfig(jwtService))
}

// JWTAuthWithConfig creates JWT authentication middleware with custom config
func JWTAuthWithConfig(cfg JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, skipPath := range cfg.SkipPaths {
			if path == skipPath {
				c.Next()
				return
			}
		}

		authHeader := c.GetHeader(AuthHeaderKey)
		if authHeader == "" {
			abortUnauthorized(c, "Missing authorization header")
			return
		}
		if !strings.HasPrefix(authHeader, BearerPrefix) {
			abortUnauthorized(c, "Invalid authorization header format")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, BearerPrefix)
		claims, err := cfg.JWTService.ValidateAccessToken(tokenString)
		if err != nil {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		c.Set(JWTClaimsKey, claims)
		c.Set(JWTUserIDKey, claims.UserID)
		c.Set(JWTUsernameKey, claims.Username)
		c.Set(JWTRolesKey, claims.Roles)

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, detail string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponse(dto.ErrCodeUnauthorized, detail))
}

// GetJWTUserID returns the authenticated user ID from the context
func GetJWTUserID(c *gin.Context) string {
	return c.GetString(JWTUserIDKey)
}

// GetJWTUsername returns the authenticated username from the context
func GetJWTUsername(c *gin.Context) string {
	return c.GetString(JWTUsernameKey)
}

// GetJWTRoles returns the authenticated user's staff roles
func GetJWTRoles(c *gin.Context) []string {
	if roles, exists := c.Get(JWTRolesKey); exists {
		if r, ok := roles.([]string); ok {
			return r
		}
	}
	return nil
}

// GetActor builds the authorization actor from the JWT claims
func GetActor(c *gin.Context) (access.Actor, bool) {
	userID, err := uuid.Parse(GetJWTUserID(c))
	if err != nil {
		return access.Actor{}, false
	}

	roleStrings := GetJWTRoles(c)
	roles := make([]identity.StaffRole, 0, len(roleStrings))
	for _, s := range roleStrings {
		role := identity.StaffRole(s)
		if role.IsValid() {
			roles = append(roles, role)
		}
	}

	return access.Actor{UserID: userID, Roles: roles}, true
}
