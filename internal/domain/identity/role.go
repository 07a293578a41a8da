package identity

import (
	"strings"

	"github.com/bistro/backend/internal/domain/shared"
)

// StaffRole represents a staff role a user can hold
// A user holding neither role is a regular customer.
type StaffRole string

const (
	RoleManager      StaffRole = "manager"
	RoleDeliveryCrew StaffRole = "delivery_crew"
)

// IsValid checks if the role is a known StaffRole
func (r StaffRole) IsValid() bool {
	switch r {
	case RoleManager, RoleDeliveryCrew:
		return true
	}
	return false
}

// String returns the string representation of the role
func (r StaffRole) String() string {
	return string(r)
}

// ParseStaffRole converts a string into a StaffRole
func ParseStaffRole(s string) (StaffRole, error) {
	role := StaffRole(strings.ToLower(strings.TrimSpace(s)))
	if !role.IsValid() {
		return "", shared.NewDomainError("INVALID_ROLE", "Unknown staff role: "+s)
	}
	return role, nil
}
