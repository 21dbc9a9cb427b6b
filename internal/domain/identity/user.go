package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/stockdesk/backend/internal/domain/shared"
)

// Password cost for bcrypt
const bcryptCost = 12

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// User represents an account able to authenticate against the system
type User struct {
	shared.BaseEntity
	Name           string    `gorm:"type:varchar(200);not null"`
	NameUnaccented string    `gorm:"type:varchar(200);not null;index"`
	Email          string    `gorm:"type:varchar(200);not null;uniqueIndex"`
	PasswordHash   string    `gorm:"type:varchar(100);not null" json:"-"`
	RoleID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Role           *Role     `gorm:"foreignKey:RoleID"`
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a new user with a hashed password
func NewUser(name, email, password string, roleID uuid.UUID) (*User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	return &User{
		BaseEntity:     shared.NewBaseEntity(),
		Name:           name,
		NameUnaccented: shared.Unaccent(name),
		Email:          strings.ToLower(strings.TrimSpace(email)),
		PasswordHash:   hash,
		RoleID:         roleID,
	}, nil
}

// Update updates the user's profile fields
func (u *User) Update(name, email string, roleID uuid.UUID) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if err := validateEmail(email); err != nil {
		return err
	}

	u.Name = name
	u.NameUnaccented = shared.Unaccent(name)
	u.Email = strings.ToLower(strings.TrimSpace(email))
	u.RoleID = roleID
	u.UpdatedAt = time.Now()
	return nil
}

// ChangePassword replaces the password hash after validating the new password
func (u *User) ChangePassword(password string) error {
	if err := validatePassword(password); err != nil {
		return err
	}
	hash, err := hashPassword(password)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}
	u.PasswordHash = hash
	u.UpdatedAt = time.Now()
	return nil
}

// CheckPassword verifies a plaintext password against the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func validateEmail(email string) error {
	if !emailPattern.MatchString(strings.TrimSpace(email)) {
		return shared.NewDomainError("INVALID_EMAIL", "Email address is not valid")
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	if len(password) > 72 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot exceed 72 characters")
	}
	return nil
}
