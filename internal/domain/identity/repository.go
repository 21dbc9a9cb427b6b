package identity

import (
	"context"

	"github.com/google/uuid"

	"github.com/stockdesk/backend/internal/domain/shared"
)

// UserRepository defines persistence operations for users
type UserRepository interface {
	shared.Repository[User]
	FindByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	CountByRole(ctx context.Context, roleID uuid.UUID) (int64, error)
}

// RoleRepository defines persistence operations for roles
type RoleRepository interface {
	shared.Repository[Role]
	FindByName(ctx context.Context, name string) (*Role, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}
