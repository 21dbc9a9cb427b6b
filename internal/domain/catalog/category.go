package catalog

import (
	"time"

	"github.com/stockdesk/backend/internal/domain/shared"
)

// Category groups products in the catalog
type Category struct {
	shared.BaseEntity
	Name           string `gorm:"type:varchar(100);not null"`
	NameUnaccented string `gorm:"type:varchar(100);not null;index"`
	Description    string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Category) TableName() string {
	return "categories"
}

// NewCategory creates a new category
func NewCategory(name, description string) (*Category, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	return &Category{
		BaseEntity:     shared.NewBaseEntity(),
		Name:           name,
		NameUnaccented: shared.Unaccent(name),
		Description:    description,
	}, nil
}

// Update updates the category
func (c *Category) Update(name, description string) error {
	if err := validateName(name); err != nil {
		return err
	}
	c.Name = name
	c.NameUnaccented = shared.Unaccent(name)
	c.Description = description
	c.UpdatedAt = time.Now()
	return nil
}
