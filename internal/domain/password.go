package domain

import "errors"

const minPasswordLen = 8

// Password is a validated password. Construct via ParsePassword only.
type Password string

var ErrPasswordTooShort = errors.New("password too short")

func ParsePassword(raw string) (Password, error) {
	if len(raw) < minPasswordLen {
		return "", ErrPasswordTooShort
	}
	return Password(raw), nil
}
