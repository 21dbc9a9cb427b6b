package identity

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/stockdesk/backend/internal/domain/identity"
	"github.com/stockdesk/backend/internal/domain/shared"
)

// UserService handles administrative operations on user accounts
type UserService struct {
	users identity.UserRepository
	roles identity.RoleRepository
}

// NewUserService creates a new UserService
func NewUserService(users identity.UserRepository, roles identity.RoleRepository) *UserService {
	return &UserService{users: users, roles: roles}
}

// GetByID returns a user by ID
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*UserDTO, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewUserDTO(user), nil
}

// List returns a page of users matching the query
func (s *UserService) List(ctx context.Context, query shared.ListQuery) ([]UserDTO, *shared.Pagination, error) {
	criteria, err := shared.BuildCriteria(query)
	if err != nil {
		return nil, nil, err
	}

	users, err := s.users.FindAll(ctx, criteria)
	if err != nil {
		return nil, nil, err
	}
	total, err := s.users.Count(ctx, criteria)
	if err != nil {
		return nil, nil, err
	}

	dtos := make([]UserDTO, len(users))
	for i := range users {
		dtos[i] = *NewUserDTO(&users[i])
	}
	pagination := shared.NewPagination(total, criteria.Page, criteria.PageSize)
	return dtos, &pagination, nil
}

// Update updates a user's profile
func (s *UserService) Update(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*UserDTO, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if user.Email != input.Email {
		exists, err := s.users.ExistsByEmail(ctx, input.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("USER_ALREADY_EXISTS", "A user with this email already exists")
		}
	}

	role, err := s.roles.FindByID(ctx, input.RoleID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("ROLE_NOT_FOUND", "Referenced role does not exist")
		}
		return nil, err
	}

	if err := user.Update(input.Name, input.Email, role.ID); err != nil {
		return nil, err
	}
	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}

	user.Role = role
	return NewUserDTO(user), nil
}

// ChangePassword replaces a user's password
func (s *UserService) ChangePassword(ctx context.Context, id uuid.UUID, input ChangePasswordInput) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := user.ChangePassword(input.Password); err != nil {
		return err
	}
	return s.users.Save(ctx, user)
}

// Delete soft-deletes a user
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.users.Delete(ctx, id)
}
