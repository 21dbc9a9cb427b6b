package identity

import (
	"context"

	"github.com/google/uuid"

	"github.com/stockdesk/backend/internal/domain/identity"
	"github.com/stockdesk/backend/internal/domain/shared"
)

// RoleService handles operations on roles
type RoleService struct {
	roles identity.RoleRepository
	users identity.UserRepository
}

// NewRoleService creates a new RoleService
func NewRoleService(roles identity.RoleRepository, users identity.UserRepository) *RoleService {
	return &RoleService{roles: roles, users: users}
}

// Create creates a new role
func (s *RoleService) Create(ctx context.Context, input CreateRoleInput) (*RoleDTO, error) {
	exists, err := s.roles.ExistsByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ROLE_ALREADY_EXISTS", "A role with this name already exists")
	}

	role, err := identity.NewRole(input.Name, input.Description)
	if err != nil {
		return nil, err
	}
	if err := s.roles.Save(ctx, role); err != nil {
		return nil, err
	}
	return NewRoleDTO(role), nil
}

// GetByID returns a role by its ID
func (s *RoleService) GetByID(ctx context.Context, id uuid.UUID) (*RoleDTO, error) {
	role, err := s.roles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewRoleDTO(role), nil
}

// List returns a page of roles matching the query
func (s *RoleService) List(ctx context.Context, query shared.ListQuery) ([]RoleDTO, *shared.Pagination, error) {
	criteria, err := shared.BuildCriteria(query)
	if err != nil {
		return nil, nil, err
	}

	roles, err := s.roles.FindAll(ctx, criteria)
	if err != nil {
		return nil, nil, err
	}
	total, err := s.roles.Count(ctx, criteria)
	if err != nil {
		return nil, nil, err
	}

	dtos := make([]RoleDTO, len(roles))
	for i := range roles {
		dtos[i] = *NewRoleDTO(&roles[i])
	}
	pagination := shared.NewPagination(total, criteria.Page, criteria.PageSize)
	return dtos, &pagination, nil
}

// Update updates a role
func (s *RoleService) Update(ctx context.Context, id uuid.UUID, input UpdateRoleInput) (*RoleDTO, error) {
	role, err := s.roles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := role.Update(input.Name, input.Description); err != nil {
		return nil, err
	}
	if err := s.roles.Save(ctx, role); err != nil {
		return nil, err
	}
	return NewRoleDTO(role), nil
}

// Delete soft-deletes a role. Roles still assigned to users cannot be
// removed.
func (s *RoleService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.roles.FindByID(ctx, id); err != nil {
		return err
	}

	assigned, err := s.users.CountByRole(ctx, id)
	if err != nil {
		return err
	}
	if assigned > 0 {
		return shared.NewDomainError("ROLE_IN_USE", "Role is assigned to users and cannot be deleted")
	}

	return s.roles.Delete(ctx, id)
}
