package catalog

import (
	"time"

	"github.com/stockdesk/backend/internal/domain/shared"
)

// Supplier represents a product supplier
type Supplier struct {
	shared.BaseEntity
	Name           string `gorm:"type:varchar(200);not null"`
	NameUnaccented string `gorm:"type:varchar(200);not null;index"`
	Email          string `gorm:"type:varchar(200)"`
	Phone          string `gorm:"type:varchar(30)"`
}

// TableName returns the table name for GORM
func (Supplier) TableName() string {
	return "suppliers"
}

// NewSupplier creates a new supplier
func NewSupplier(name, email, phone string) (*Supplier, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	return &Supplier{
		BaseEntity:     shared.NewBaseEntity(),
		Name:           name,
		NameUnaccented: shared.Unaccent(name),
		Email:          email,
		Phone:          phone,
	}, nil
}

// Update updates the supplier
func (s *Supplier) Update(name, email, phone string) error {
	if err := validateName(name); err != nil {
		return err
	}
	s.Name = name
	s.NameUnaccented = shared.Unaccent(name)
	s.Email = email
	s.Phone = phone
	s.UpdatedAt = time.Now()
	return nil
}
