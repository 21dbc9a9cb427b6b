package identity

import (
	"time"

	"github.com/google/uuid"

	"github.com/stockdesk/backend/internal/domain/identity"
	"github.com/stockdesk/backend/internal/infrastructure/auth"
)

// SignupInput carries the data to register a new user
type SignupInput struct {
	Name     string    `json:"name" binding:"required,max=200"`
	Email    string    `json:"email" binding:"required,email"`
	Password string    `json:"password" binding:"required,min=8,max=72"`
	RoleID   uuid.UUID `json:"role_id" binding:"required"`
}

// LoginInput carries the credentials for authentication
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshInput carries a refresh token
type RefreshInput struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// AuthResult is returned by a successful login
type AuthResult struct {
	User   *UserDTO        `json:"user"`
	Tokens *auth.TokenPair `json:"tokens"`
}

// UpdateUserInput carries the data to update a user's profile
type UpdateUserInput struct {
	Name   string    `json:"name" binding:"required,max=200"`
	Email  string    `json:"email" binding:"required,email"`
	RoleID uuid.UUID `json:"role_id" binding:"required"`
}

// ChangePasswordInput carries a user's new password
type ChangePasswordInput struct {
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// UserDTO is the user representation returned to clients. The password hash
// never leaves the domain.
type UserDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	RoleID    uuid.UUID `json:"role_id"`
	Role      *RoleDTO  `json:"role,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUserDTO maps a user entity to its DTO
func NewUserDTO(u *identity.User) *UserDTO {
	dto := &UserDTO{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		RoleID:    u.RoleID,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	if u.Role != nil {
		dto.Role = NewRoleDTO(u.Role)
	}
	return dto
}

// CreateRoleInput carries the data to create a role
type CreateRoleInput struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
}

// UpdateRoleInput carries the data to update a role
type UpdateRoleInput struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
}

// RoleDTO is the role representation returned to clients
type RoleDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewRoleDTO maps a role entity to its DTO
func NewRoleDTO(r *identity.Role) *RoleDTO {
	return &RoleDTO{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
