package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bistro/backend/internal/domain/access"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func setupRoleRouter(action access.Action, roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(JWTUserIDKey, uuid.New().String())
		c.Set(JWTRolesKey, roles)
		c.Next()
	})
	router.GET("/resource", RequireAction(action), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func performGet(router *gin.Engine) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/resource", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequireAction_ManagerAllowedToManageMenu(t *testing.T) {
	router := setupRoleRouter(access.ActionManageMenu, "manager")
	assert.Equal(t, http.StatusOK, performGet(router).Code)
}

func TestRequireAction_CustomerDeniedMenuManagement(t *testing.T) {
	router := setupRoleRouter(access.ActionManageMenu)
	assert.Equal(t, http.StatusForbidden, performGet(router).Code)
}

func TestRequireAction_CrewDeniedGroupManagement(t *testing.T) {
	router := setupRoleRouter(access.ActionManageGroups, "delivery_crew")
	assert.Equal(t, http.StatusForbidden, performGet(router).Code)
}

func TestRequireAction_ManagerAllowedCartUse(t *testing.T) {
	router := setupRoleRouter(access.ActionUseCart, "manager")
	assert.Equal(t, http.StatusOK, performGet(router).Code)
}

func TestRequireAction_CrewAllowedOrderPlacement(t *testing.T) {
	router := setupRoleRouter(access.ActionPlaceOrder, "delivery_crew")
	assert.Equal(t, http.StatusOK, performGet(router).Code)
}

func TestRequireAction_CustomerAllowedCartUse(t *testing.T) {
	router := setupRoleRouter(access.ActionUseCart)
	assert.Equal(t, http.StatusOK, performGet(router).Code)
}

func TestRequireAction_UnauthenticatedRejected(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/resource", RequireAction(access.ActionBrowseMenu), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	assert.Equal(t, http.StatusUnauthorized, performGet(router).Code)
}
