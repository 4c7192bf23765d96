package user

import (
	"regexp"
	"strings"
	"time"

	apperrors "github.com/louisbranch/recordstore/internal/platform/errors"
)

var (
	// ErrEmptyEmail indicates a missing email address.
	ErrEmptyEmail = apperrors.New(apperrors.CodeUserEmptyEmail, "email is required")
	// ErrInvalidEmail indicates an email that does not match the required format.
	ErrInvalidEmail = apperrors.New(apperrors.CodeUserInvalidEmail, "email must look like local@domain.tld")

	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// User represents a stored account record. The identifier is supplied by the
// caller and never changes after creation.
type User struct {
	ID        uint64    `json:"id"`
	Email     string    `json:"email"`
	Activated bool      `json:"activated"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// New creates a user record with a normalized, validated email. The record
// starts deactivated.
func New(id uint64, email string) (User, error) {
	normalized, err := NormalizeEmail(email)
	if err != nil {
		return User{}, err
	}

	createdAt := time.Now().UTC()
	return User{
		ID:        id,
		Email:     normalized,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}, nil
}

// NormalizeEmail trims and lowercases an email before validation.
func NormalizeEmail(s string) (string, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", ErrEmptyEmail
	}
	if err := ValidateEmail(s); err != nil {
		return "", err
	}
	return s, nil
}

// ValidateEmail enforces the canonical local@domain.tld shape.
func ValidateEmail(s string) error {
	if !emailPattern.MatchString(s) {
		return ErrInvalidEmail
	}
	return nil
}

// Activate marks the user active and bumps the update timestamp.
func (u *User) Activate() {
	u.Activated = true
	u.UpdatedAt = time.Now().UTC()
}
