package identity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/stockdesk/backend/internal/domain/identity"
	"github.com/stockdesk/backend/internal/domain/shared"
	"github.com/stockdesk/backend/internal/infrastructure/auth"
)

// AuthService handles signup, login and token lifecycle
type AuthService struct {
	users      identity.UserRepository
	roles      identity.RoleRepository
	jwtService *auth.JWTService
	blacklist  auth.TokenBlacklist
}

// NewAuthService creates a new AuthService
func NewAuthService(
	users identity.UserRepository,
	roles identity.RoleRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
) *AuthService {
	return &AuthService{
		users:      users,
		roles:      roles,
		jwtService: jwtService,
		blacklist:  blacklist,
	}
}

// Signup registers a new user account
func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*UserDTO, error) {
	exists, err := s.users.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("USER_ALREADY_EXISTS", "A user with this email already exists")
	}

	role, err := s.roles.FindByID(ctx, input.RoleID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("ROLE_NOT_FOUND", "Referenced role does not exist")
		}
		return nil, err
	}

	user, err := identity.NewUser(input.Name, input.Email, input.Password, role.ID)
	if err != nil {
		return nil, err
	}
	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}

	user.Role = role
	return NewUserDTO(user), nil
}

// Login authenticates a user and issues a token pair.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	user, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, invalidCredentials()
		}
		return nil, err
	}
	if !user.CheckPassword(input.Password) {
		return nil, invalidCredentials()
	}

	tokens, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		UserID: user.ID,
		Email:  user.Email,
		RoleID: user.RoleID,
	})
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: NewUserDTO(user), Tokens: tokens}, nil
}

// Refresh validates a refresh token and issues a fresh pair. The used
// refresh token is blacklisted so it cannot be replayed.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*auth.TokenPair, error) {
	claims, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_REFRESH_TOKEN", "Refresh token is invalid or expired")
	}

	blacklisted, err := s.blacklist.IsBlacklisted(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if blacklisted {
		return nil, shared.NewDomainError("INVALID_REFRESH_TOKEN", "Refresh token has been revoked")
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_REFRESH_TOKEN", "Refresh token is invalid or expired")
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_REFRESH_TOKEN", "Refresh token is invalid or expired")
		}
		return nil, err
	}

	tokens, err := s.jwtService.RefreshTokenPair(refreshToken, auth.GenerateTokenInput{
		UserID: user.ID,
		Email:  user.Email,
		RoleID: user.RoleID,
	})
	if err != nil {
		if errors.Is(err, auth.ErrMaxRefreshExceeded) {
			return nil, shared.NewDomainError("MAX_REFRESH_EXCEEDED", "Session renewal limit reached, log in again")
		}
		return nil, shared.NewDomainError("INVALID_REFRESH_TOKEN", "Refresh token is invalid or expired")
	}

	if err := s.revoke(ctx, claims); err != nil {
		return nil, err
	}
	return tokens, nil
}

// Logout revokes the given refresh token. Access tokens stay valid until
// they expire.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		// Already unusable, nothing to revoke
		return nil
	}
	return s.revoke(ctx, claims)
}

func (s *AuthService) revoke(ctx context.Context, claims *auth.Claims) error {
	if claims.ExpiresAt == nil {
		return nil
	}
	return s.blacklist.Add(ctx, claims.ID, time.Until(claims.ExpiresAt.Time))
}

func invalidCredentials() error {
	return shared.NewDomainError("INVALID_CREDENTIALS", "Email or password is incorrect")
}
