package identity

import (
	"context"

	"github.com/bistro/backend/internal/domain/identity"
	"github.com/bistro/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GroupService manages staff group rosters
type GroupService struct {
	userRepo identity.UserRepository
	logger   *zap.Logger
}

// NewGroupService creates a new GroupService
func NewGroupService(userRepo identity.UserRepository, logger *zap.Logger) *GroupService {
	return &GroupService{userRepo: userRepo, logger: logger}
}

// ListMembers lists all users holding the given staff role
func (s *GroupService) ListMembers(ctx context.Context, role identity.StaffRole) ([]UserResponse, error) {
	if !role.IsValid() {
		return nil, shared.NewDomainError("INVALID_ROLE", "Unknown staff role")
	}

	users, err := s.userRepo.FindByRole(ctx, role)
	if err != nil {
		return nil, err
	}

	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, toUserResponse(&users[i]))
	}
	return responses, nil
}

// AddMember grants the staff role to the user with the given username
func (s *GroupService) AddMember(ctx context.Context, role identity.StaffRole, username string) (*UserResponse, error) {
	if !role.IsValid() {
		return nil, shared.NewDomainError("INVALID_ROLE", "Unknown staff role")
	}

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if err := user.GrantRole(role); err != nil {
		return nil, err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("Staff role granted",
		zap.String("username", user.Username),
		zap.String("role", role.String()))

	resp := toUserResponse(user)
	return &resp, nil
}

// RemoveMember revokes the staff role from the user with the given ID
// Removing a user who is not in the group is an error, so a manager
// notices a stale roster instead of silently succeeding.
func (s *GroupService) RemoveMember(ctx context.Context, role identity.StaffRole, userID uuid.UUID) error {
	if !role.IsValid() {
		return shared.NewDomainError("INVALID_ROLE", "Unknown staff role")
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if !user.HasRole(role) {
		return shared.ErrNotFound
	}

	user.RevokeRole(role)

	if err := s.userRepo.Save(ctx, user); err != nil {
		return err
	}

	s.logger.Info("Staff role revoked",
		zap.String("username", user.Username),
		zap.String("role", role.String()))

	return nil
}
