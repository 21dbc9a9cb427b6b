package identity

import (
	"strings"
	"time"

	"github.com/stockdesk/backend/internal/domain/shared"
)

// Role names users are grouped under
type Role struct {
	shared.BaseEntity
	Name           string `gorm:"type:varchar(100);not null"`
	NameUnaccented string `gorm:"type:varchar(100);not null;index"`
	Description    string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Role) TableName() string {
	return "roles"
}

// NewRole creates a new role
func NewRole(name, description string) (*Role, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	return &Role{
		BaseEntity:     shared.NewBaseEntity(),
		Name:           name,
		NameUnaccented: shared.Unaccent(name),
		Description:    description,
	}, nil
}

// Update updates the role
func (r *Role) Update(name, description string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	r.Name = name
	r.NameUnaccented = shared.Unaccent(name)
	r.Description = description
	r.UpdatedAt = time.Now()
	return nil
}
