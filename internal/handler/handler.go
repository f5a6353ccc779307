package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/itchan-dev/authd/internal/config"
	"github.com/itchan-dev/authd/internal/logger"
	"github.com/itchan-dev/authd/internal/service"
)

const accessTokenCookie = "accessToken"

type Handler struct {
	auth service.AuthService
	cfg  *config.Config
}

func New(auth service.AuthService, cfg *config.Config) *Handler {
	return &Handler{auth: auth, cfg: cfg}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}

// extractToken pulls the session token from the accessToken cookie or, for
// API clients, from the Authorization header. Empty string when absent.
func extractToken(r *http.Request) string {
	if cookie, err := r.Cookie(accessTokenCookie); err == nil {
		return cookie.Value
	}
	if token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); found {
		return token
	}
	return ""
}

func (h *Handler) setAuthCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Path:     "/",
		Name:     accessTokenCookie,
		Value:    token,
		MaxAge:   int(h.cfg.JwtTTL().Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.Public.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearAuthCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Path:     "/",
		Name:     accessTokenCookie,
		Value:    "",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.Public.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}
