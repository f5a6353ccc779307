package domain

import (
	"crypto/rand"
	"errors"
	"math/big"

	"github.com/google/uuid"
)

const twoFACodeLen = 6

// LoginAttemptID identifies a single pending two-factor challenge. It is
// returned to the caller on login and must be presented back at verification.
type LoginAttemptID string

// TwoFACode is the 6-digit code delivered out of band.
type TwoFACode string

var (
	ErrInvalidLoginAttemptID = errors.New("login attempt id is not a valid uuid")
	ErrInvalidTwoFACode      = errors.New("2fa code must be 6 digits")
)

func NewLoginAttemptID() LoginAttemptID {
	return LoginAttemptID(uuid.NewString())
}

func ParseLoginAttemptID(raw string) (LoginAttemptID, error) {
	if _, err := uuid.Parse(raw); err != nil {
		return "", ErrInvalidLoginAttemptID
	}
	return LoginAttemptID(raw), nil
}

// GenerateTwoFACode returns a cryptographically random 6-digit code.
func GenerateTwoFACode() TwoFACode {
	const digits = "0123456789"
	b := make([]byte, twoFACodeLen)
	for i := range b {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		if err != nil {
			panic("failed to generate 2fa code: " + err.Error())
		}
		b[i] = digits[n.Int64()]
	}
	return TwoFACode(b)
}

func ParseTwoFACode(raw string) (TwoFACode, error) {
	if len(raw) != twoFACodeLen {
		return "", ErrInvalidTwoFACode
	}
	for _, c := range raw {
		if c < '0' || c > '9' {
			return "", ErrInvalidTwoFACode
		}
	}
	return TwoFACode(raw), nil
}
