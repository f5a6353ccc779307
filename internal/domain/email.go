package domain

import (
	"errors"
	"strings"
)

// Email is a validated email address. Construct via ParseEmail only.
type Email string

var ErrInvalidEmail = errors.New("not a valid email: missing @")

// ParseEmail validates the raw address and lowercases it so lookups
// are case-insensitive.
func ParseEmail(raw string) (Email, error) {
	if raw == "" || !strings.Contains(raw, "@") {
		return "", ErrInvalidEmail
	}
	return Email(strings.ToLower(raw)), nil
}

func (e Email) String() string {
	return string(e)
}
