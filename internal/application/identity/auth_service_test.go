package identity

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stockdesk/backend/internal/domain/identity"
	"github.com/stockdesk/backend/internal/domain/shared"
	"github.com/stockdesk/backend/internal/infrastructure/auth"
	"github.com/stockdesk/backend/internal/infrastructure/config"
)

func newAuthService() (*AuthService, *MockUserRepository, *MockRoleRepository) {
	users := new(MockUserRepository)
	roles := new(MockRoleRepository)
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-test-secret-test-secret",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: time.Hour,
		Issuer:                 "stockdesk-test",
		MaxRefreshCount:        5,
	})
	blacklist := auth.NewInMemoryTokenBlacklist()
	return NewAuthService(users, roles, jwtService, blacklist), users, roles
}

func seedUser(t *testing.T, role *identity.Role) *identity.User {
	t.Helper()
	user, err := identity.NewUser("Ana", "ana@example.com", "correct-horse", role.ID)
	require.NoError(t, err)
	user.Role = role
	return user
}

func seedRole(t *testing.T) *identity.Role {
	t.Helper()
	role, err := identity.NewRole("seller", "")
	require.NoError(t, err)
	return role
}

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()

	t.Run("creates account", func(t *testing.T) {
		svc, users, roles := newAuthService()
		role := seedRole(t)

		users.On("ExistsByEmail", ctx, "ana@example.com").Return(false, nil)
		roles.On("FindByID", ctx, role.ID).Return(role, nil)
		users.On("Save", ctx, mock.AnythingOfType("*identity.User")).Return(nil)

		dto, err := svc.Signup(ctx, SignupInput{
			Name:     "Ana",
			Email:    "ana@example.com",
			Password: "correct-horse",
			RoleID:   role.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, "ana@example.com", dto.Email)
		require.NotNil(t, dto.Role)
		assert.Equal(t, "seller", dto.Role.Name)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		svc, users, _ := newAuthService()

		users.On("ExistsByEmail", ctx, "ana@example.com").Return(true, nil)

		_, err := svc.Signup(ctx, SignupInput{
			Name:     "Ana",
			Email:    "ana@example.com",
			Password: "correct-horse",
			RoleID:   uuid.New(),
		})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "USER_ALREADY_EXISTS", domainErr.Code)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		svc, users, roles := newAuthService()
		roleID := uuid.New()

		users.On("ExistsByEmail", ctx, "ana@example.com").Return(false, nil)
		roles.On("FindByID", ctx, roleID).Return(nil, shared.ErrNotFound)

		_, err := svc.Signup(ctx, SignupInput{
			Name:     "Ana",
			Email:    "ana@example.com",
			Password: "correct-horse",
			RoleID:   roleID,
		})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ROLE_NOT_FOUND", domainErr.Code)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("issues tokens for valid credentials", func(t *testing.T) {
		svc, users, _ := newAuthService()
		user := seedUser(t, seedRole(t))

		users.On("FindByEmail", ctx, "ana@example.com").Return(user, nil)

		result, err := svc.Login(ctx, LoginInput{Email: "ana@example.com", Password: "correct-horse"})
		require.NoError(t, err)
		assert.NotEmpty(t, result.Tokens.AccessToken)
		assert.NotEmpty(t, result.Tokens.RefreshToken)
		assert.Equal(t, user.ID, result.User.ID)
	})

	t.Run("wrong password and unknown email produce the same error", func(t *testing.T) {
		svc, users, _ := newAuthService()
		user := seedUser(t, seedRole(t))

		users.On("FindByEmail", ctx, "ana@example.com").Return(user, nil)
		users.On("FindByEmail", ctx, "nobody@example.com").Return(nil, shared.ErrNotFound)

		_, errWrongPassword := svc.Login(ctx, LoginInput{Email: "ana@example.com", Password: "wrong"})
		_, errUnknownEmail := svc.Login(ctx, LoginInput{Email: "nobody@example.com", Password: "whatever"})

		var first, second *shared.DomainError
		require.ErrorAs(t, errWrongPassword, &first)
		require.ErrorAs(t, errUnknownEmail, &second)
		assert.Equal(t, "INVALID_CREDENTIALS", first.Code)
		assert.Equal(t, first.Code, second.Code)
		assert.Equal(t, first.Message, second.Message)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("rotates the refresh token", func(t *testing.T) {
		svc, users, _ := newAuthService()
		user := seedUser(t, seedRole(t))

		users.On("FindByEmail", ctx, "ana@example.com").Return(user, nil)
		users.On("FindByID", ctx, user.ID).Return(user, nil)

		login, err := svc.Login(ctx, LoginInput{Email: "ana@example.com", Password: "correct-horse"})
		require.NoError(t, err)

		refreshed, err := svc.Refresh(ctx, login.Tokens.RefreshToken)
		require.NoError(t, err)
		assert.NotEqual(t, login.Tokens.RefreshToken, refreshed.RefreshToken)

		// The used token was revoked and cannot be replayed
		_, err = svc.Refresh(ctx, login.Tokens.RefreshToken)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_REFRESH_TOKEN", domainErr.Code)
	})

	t.Run("rejects garbage token", func(t *testing.T) {
		svc, _, _ := newAuthService()

		_, err := svc.Refresh(ctx, "not.a.token")
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_REFRESH_TOKEN", domainErr.Code)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()
	svc, users, _ := newAuthService()
	user := seedUser(t, seedRole(t))

	users.On("FindByEmail", ctx, "ana@example.com").Return(user, nil)

	login, err := svc.Login(ctx, LoginInput{Email: "ana@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, login.Tokens.RefreshToken))

	_, err = svc.Refresh(ctx, login.Tokens.RefreshToken)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_REFRESH_TOKEN", domainErr.Code)

	// Logging out twice is harmless
	assert.NoError(t, svc.Logout(ctx, login.Tokens.RefreshToken))
}

func TestRoleService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("refuses while assigned to users", func(t *testing.T) {
		users := new(MockUserRepository)
		roles := new(MockRoleRepository)
		svc := NewRoleService(roles, users)
		role := seedRole(t)

		roles.On("FindByID", ctx, role.ID).Return(role, nil)
		users.On("CountByRole", ctx, role.ID).Return(int64(2), nil)

		err := svc.Delete(ctx, role.ID)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ROLE_IN_USE", domainErr.Code)
		roles.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("deletes unassigned role", func(t *testing.T) {
		users := new(MockUserRepository)
		roles := new(MockRoleRepository)
		svc := NewRoleService(roles, users)
		role := seedRole(t)

		roles.On("FindByID", ctx, role.ID).Return(role, nil)
		users.On("CountByRole", ctx, role.ID).Return(int64(0), nil)
		roles.On("Delete", ctx, role.ID).Return(nil)

		require.NoError(t, svc.Delete(ctx, role.ID))
		roles.AssertExpectations(t)
	})
}
