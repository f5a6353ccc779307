package jwt

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/itchan-dev/authd/internal/domain"
	internal_errors "github.com/itchan-dev/authd/internal/errors"
	"github.com/itchan-dev/authd/internal/logger"
)

type TokenService interface {
	NewToken(email domain.Email) (string, error)
	DecodeToken(jwtStr string) (domain.Email, error)
}

type Jwt struct {
	secretKey string
	ttl       time.Duration
}

func New(secretKey string, ttl time.Duration) *Jwt {
	return &Jwt{secretKey, ttl}
}

func (j *Jwt) NewToken(email domain.Email) (string, error) {
	claims := jwt.MapClaims{}
	claims["email"] = email.String()
	claims["exp"] = time.Now().Add(j.ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		logger.Log.Error("failed to sign token", "error", err)
		return "", internal_errors.New("Can't create token", http.StatusInternalServerError)
	}

	return tokenString, nil
}

func (j *Jwt) DecodeToken(jwtStr string) (domain.Email, error) {
	token, err := jwt.Parse(jwtStr, func(token *jwt.Token) (interface{}, error) {
		// Verify signing algorithm
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, internal_errors.New(fmt.Sprintf("Unexpected signing method: %v", token.Header["alg"]), http.StatusUnauthorized)
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return "", internal_errors.New("Invalid token", http.StatusUnauthorized)
	}

	if !token.Valid {
		return "", internal_errors.New("Invalid token", http.StatusUnauthorized)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", internal_errors.New("Invalid token claims", http.StatusUnauthorized)
	}

	emailClaim, ok := claims["email"].(string)
	if !ok {
		return "", internal_errors.New("Invalid token claims", http.StatusUnauthorized)
	}

	email, err := domain.ParseEmail(emailClaim)
	if err != nil {
		return "", internal_errors.New("Invalid token claims", http.StatusUnauthorized)
	}

	return email, nil
}
