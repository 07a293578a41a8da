package handler

import (
	identityapp "github.com/bistro/backend/internal/application/identity"
	"github.com/bistro/backend/internal/domain/identity"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GroupHandler handles staff group roster API endpoints
type GroupHandler struct {
	BaseHandler
	groupService *identityapp.GroupService
}

// NewGroupHandler creates a new GroupHandler
func NewGroupHandler(groupService *identityapp.GroupService) *GroupHandler {
	return &GroupHandler{
		groupService: groupService,
	}
}

// groupRole maps the URL group segment to a staff role
func groupRole(c *gin.Context) (identity.StaffRole, bool) {
	switch c.Param("group") {
	case "manager":
		return identity.RoleManager, true
	case "delivery-crew":
		return identity.RoleDeliveryCrew, true
	default:
		return "", false
	}
}

// ListMembers returns the members of a staff group
func (h *GroupHandler) ListMembers(c *gin.Context) {
	role, ok := groupRole(c)
	if !ok {
		h.NotFound(c, "Unknown group")
		return
	}

	members, err := h.groupService.ListMembers(c.Request.Context(), role)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, members)
}

// AddMember grants a staff role to a user identified by username
func (h *GroupHandler) AddMember(c *gin.Context) {
	role, ok := groupRole(c)
	if !ok {
		h.NotFound(c, "Unknown group")
		return
	}

	var req identityapp.AddGroupMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	user, err := h.groupService.AddMember(c.Request.Context(), role, req.Username)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, user)
}

// RemoveMember revokes a staff role from a user
func (h *GroupHandler) RemoveMember(c *gin.Context) {
	role, ok := groupRole(c)
	if !ok {
		h.NotFound(c, "Unknown group")
		return
	}

	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	if err := h.groupService.RemoveMember(c.Request.Context(), role, userID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"detail": "User removed from group"})
}
