package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/itchan-dev/authd/internal/domain"
	"github.com/itchan-dev/authd/internal/utils"
)

// TokenVerifier validates a session token and rejects revoked ones.
type TokenVerifier interface {
	VerifyToken(token string) (domain.Email, error)
}

// Key to store the caller's email in the request context
type key int

const emailKey key = 0

// Auth holds dependencies for authentication middleware
type Auth struct {
	verifier TokenVerifier
}

func NewAuth(verifier TokenVerifier) *Auth {
	return &Auth{verifier: verifier}
}

// NeedAuth returns middleware that requires a valid, unrevoked session token.
func (a *Auth) NeedAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				http.Error(w, "Please sign-in", http.StatusUnauthorized)
				return
			}

			email, err := a.verifier.VerifyToken(token)
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), emailKey, email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractToken reads the token from the accessToken cookie (browser clients)
// or the Authorization header (API/mobile clients).
func extractToken(r *http.Request) string {
	if cookie, err := r.Cookie("accessToken"); err == nil {
		return cookie.Value
	}
	if token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); found {
		return token
	}
	return ""
}

// GetEmailFromContext retrieves the authenticated email from the context.
// Empty when the request did not pass NeedAuth.
func GetEmailFromContext(r *http.Request) domain.Email {
	email, ok := r.Context().Value(emailKey).(domain.Email)
	if !ok {
		return ""
	}
	return email
}
