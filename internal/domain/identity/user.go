package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/bistro/backend/internal/domain/shared"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserStatus represents the status of a user account
type UserStatus string

const (
	UserStatusActive      UserStatus = "active"
	UserStatusDeactivated UserStatus = "deactivated"
)

// Password cost for bcrypt
const bcryptCost = 12

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// User represents an account in the system
// It is the aggregate root for identity operations
type User struct {
	shared.BaseAggregateRoot
	Username     string      `gorm:"type:varchar(150);not null;uniqueIndex"`
	Email        string      `gorm:"type:varchar(254);index"`
	PasswordHash string      `gorm:"type:varchar(100);not null"`
	Status       UserStatus  `gorm:"type:varchar(20);not null;default:'active'"`
	Roles        []StaffRole `gorm:"-"` // Stored in user_roles, loaded by repository
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// UserRole represents a staff role membership row
type UserRole struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Role      StaffRole `gorm:"type:varchar(20);primaryKey"`
	CreatedAt time.Time
}

// TableName returns the table name for GORM
func (UserRole) TableName() string {
	return "user_roles"
}

// NewUser creates a new active user with a hashed password
func NewUser(username, email, password string) (*User, error) {
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	if email != "" && !emailPattern.MatchString(email) {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Invalid email address")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	return &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Username:          strings.ToLower(strings.TrimSpace(username)),
		Email:             strings.ToLower(strings.TrimSpace(email)),
		PasswordHash:      string(hash),
		Status:            UserStatusActive,
		Roles:             make([]StaffRole, 0),
	}, nil
}

// CheckPassword verifies a plaintext password against the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// HasRole returns true if the user holds the given staff role
func (u *User) HasRole(role StaffRole) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsManager returns true if the user holds the manager role
func (u *User) IsManager() bool {
	return u.HasRole(RoleManager)
}

// IsDeliveryCrew returns true if the user holds the delivery crew role
func (u *User) IsDeliveryCrew() bool {
	return u.HasRole(RoleDeliveryCrew)
}

// GrantRole adds a staff role to the user
// Granting a role the user already holds is a no-op.
func (u *User) GrantRole(role StaffRole) error {
	if !role.IsValid() {
		return shared.NewDomainError("INVALID_ROLE", "Unknown staff role")
	}
	if u.HasRole(role) {
		return nil
	}

	u.Roles = append(u.Roles, role)
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	return nil
}

// RevokeRole removes a staff role from the user
// Revoking a role the user does not hold is a no-op.
func (u *User) RevokeRole(role StaffRole) {
	for idx, r := range u.Roles {
		if r == role {
			u.Roles = append(u.Roles[:idx], u.Roles[idx+1:]...)
			u.UpdatedAt = time.Now()
			u.IncrementVersion()
			return
		}
	}
}

// Deactivate disables the account
func (u *User) Deactivate() error {
	if u.Status == UserStatusDeactivated {
		return shared.NewDomainError("ALREADY_DEACTIVATED", "User is already deactivated")
	}

	u.Status = UserStatusDeactivated
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	return nil
}

// IsActive returns true if the account can log in
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}

func validateUsername(username string) error {
	username = strings.TrimSpace(username)
	if len(username) < 3 {
		return shared.NewDomainError("INVALID_USERNAME", "Username must be at least 3 characters")
	}
	if len(username) > 150 {
		return shared.NewDomainError("INVALID_USERNAME", "Username cannot exceed 150 characters")
	}
	for _, r := range username {
		if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' || r == '.' || r == '-') {
			return shared.NewDomainError("INVALID_USERNAME", "Username can only contain letters, numbers, underscores, dots, and hyphens")
		}
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	if len(password) > 72 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot exceed 72 characters")
	}
	return nil
}
