package identity

import (
	"context"

	"github.com/bistro/backend/internal/domain/identity"
	"github.com/bistro/backend/internal/domain/shared"
	"github.com/bistro/backend/internal/infrastructure/auth"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuthService handles registration and authentication
type AuthService struct {
	userRepo   identity.UserRepository
	jwtService *auth.JWTService
	logger     *zap.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo identity.UserRepository, jwtService *auth.JWTService, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Register creates a new customer account
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*UserResponse, error) {
	user, err := identity.NewUser(req.Username, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	exists, err := s.userRepo.ExistsByUsername(ctx, user.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Username is already taken")
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User registered", zap.String("username", user.Username))

	resp := toUserResponse(user)
	return &resp, nil
}

// Login authenticates a user and returns a token pair
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		s.logger.Warn("Login attempt for unknown user", zap.String("username", req.Username))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid username or password")
	}

	if !user.IsActive() {
		s.logger.Warn("Login attempt for deactivated account", zap.String("username", req.Username))
		return nil, shared.NewDomainError("ACCOUNT_DEACTIVATED", "Account has been deactivated")
	}

	if !user.CheckPassword(req.Password) {
		s.logger.Warn("Invalid password attempt", zap.String("username", req.Username))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid username or password")
	}

	tokens, err := s.generateTokens(user)
	if err != nil {
		s.logger.Error("Failed to generate token pair", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate authentication tokens")
	}

	return &LoginResponse{User: toUserResponse(user), Tokens: tokens}, nil
}

// Refresh exchanges a refresh token for a new token pair
func (s *AuthService) Refresh(ctx context.Context, req RefreshRequest) (*LoginResponse, error) {
	claims, err := s.jwtService.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, shared.ErrUnauthorized
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, shared.ErrUnauthorized
	}

	// Reload the user so role changes since issuance take effect
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, shared.ErrUnauthorized
	}
	if !user.IsActive() {
		return nil, shared.NewDomainError("ACCOUNT_DEACTIVATED", "Account has been deactivated")
	}

	tokens, err := s.generateTokens(user)
	if err != nil {
		s.logger.Error("Failed to generate token pair", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate authentication tokens")
	}

	return &LoginResponse{User: toUserResponse(user), Tokens: tokens}, nil
}

func (s *AuthService) generateTokens(user *identity.User) (*auth.TokenPair, error) {
	roles := make([]string, 0, len(user.Roles))
	for _, r := range user.Roles {
		roles = append(roles, r.String())
	}
	return s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		UserID:   user.ID,
		Username: user.Username,
		Roles:    roles,
	})
}
