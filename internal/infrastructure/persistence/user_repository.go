package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/bistro/backend/internal/domain/identity"
	"github.com/bistro/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormUserRepository implements UserRepository using GORM
// Staff role memberships live in the user_roles table and are loaded
// into User.Roles on every read.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GormUserRepository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// FindByID finds a user by ID, including staff roles
func (r *GormUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	var user identity.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	if err := r.loadRoles(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUsername finds a user by username, including staff roles
func (r *GormUserRepository) FindByUsername(ctx context.Context, username string) (*identity.User, error) {
	var user identity.User
	if err := r.db.WithContext(ctx).
		Where("username = ?", strings.ToLower(username)).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	if err := r.loadRoles(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByRole finds all users holding the given staff role
func (r *GormUserRepository) FindByRole(ctx context.Context, role identity.StaffRole) ([]identity.User, error) {
	var users []identity.User
	if err := r.db.WithContext(ctx).
		Joins("JOIN user_roles ON user_roles.user_id = users.id").
		Where("user_roles.role = ?", role).
		Order("users.username ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	for i := range users {
		if err := r.loadRoles(ctx, &users[i]); err != nil {
			return nil, err
		}
	}
	return users, nil
}

// ExistsByUsername checks if a username is taken
func (r *GormUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&identity.User{}).
		Where("username = ?", strings.ToLower(username)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a user and replaces its role memberships
func (r *GormUserRepository) Save(ctx context.Context, user *identity.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(user).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&identity.UserRole{}).Error; err != nil {
			return err
		}
		for _, role := range user.Roles {
			membership := identity.UserRole{UserID: user.ID, Role: role}
			if err := tx.Create(&membership).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete deletes a user and its role memberships
func (r *GormUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&identity.UserRole{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&identity.User{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

func (r *GormUserRepository) loadRoles(ctx context.Context, user *identity.User) error {
	var memberships []identity.UserRole
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", user.ID).
		Find(&memberships).Error; err != nil {
		return err
	}
	user.Roles = make([]identity.StaffRole, 0, len(memberships))
	for _, m := range memberships {
		user.Roles = append(user.Roles, m.Role)
	}
	return nil
}
