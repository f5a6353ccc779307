package handler

import (
	"net/http"

	"github.com/itchan-dev/authd/internal/api"
	internal_errors "github.com/itchan-dev/authd/internal/errors"
	"github.com/itchan-dev/authd/internal/middleware"
	"github.com/itchan-dev/authd/internal/middleware/metrics"
	"github.com/itchan-dev/authd/internal/utils"
)

// recordOutcome buckets an auth result for the operation counter.
func recordOutcome(operation string, err error) {
	switch {
	case err == nil:
		metrics.RecordAuthOperation(operation, "success")
	case internal_errors.StatusCode(err) >= http.StatusInternalServerError:
		metrics.RecordAuthOperation(operation, "error")
	default:
		metrics.RecordAuthOperation(operation, "rejected")
	}
}

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req api.SignupRequest
	if err := utils.DecodeValidate(r.Body, &req); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	err := h.auth.Signup(req.Email, req.Password, req.Requires2FA)
	recordOutcome("signup", err)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, api.SignupResponse{Message: "User created successfully"})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req api.LoginRequest
	if err := utils.DecodeValidate(r.Body, &req); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	result, err := h.auth.Login(req.Email, req.Password)
	recordOutcome("login", err)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	// 206: credentials are valid but the session is not established yet,
	// the caller must come back through /verify-2fa
	if result.TwoFARequired {
		writeJSON(w, http.StatusPartialContent, api.TwoFactorAuthResponse{
			Message:        "2FA required",
			LoginAttemptID: result.LoginAttemptID,
		})
		return
	}

	h.setAuthCookie(w, result.AccessToken)
	writeJSON(w, http.StatusOK, api.LoginResponse{Message: "You logged in", AccessToken: result.AccessToken})
}

func (h *Handler) Verify2FA(w http.ResponseWriter, r *http.Request) {
	var req api.Verify2FARequest
	if err := utils.DecodeValidate(r.Body, &req); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	token, err := h.auth.Verify2FA(req.Email, req.LoginAttemptID, req.TwoFACode)
	recordOutcome("verify_2fa", err)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	h.setAuthCookie(w, token)
	writeJSON(w, http.StatusOK, api.LoginResponse{Message: "You logged in", AccessToken: token})
}

func (h *Handler) VerifyToken(w http.ResponseWriter, r *http.Request) {
	var req api.VerifyTokenRequest
	if err := utils.DecodeValidate(r.Body, &req); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if _, err := h.auth.VerifyToken(req.Token); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Token is valid"))
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	err := h.auth.Logout(extractToken(r))
	recordOutcome("logout", err)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	h.clearAuthCookie(w)
	w.WriteHeader(http.StatusOK)
}

// Me returns the email of the authenticated caller. The auth middleware has
// already validated the token and rejected revoked sessions.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	email := middleware.GetEmailFromContext(r)
	if email == "" {
		http.Error(w, "Please sign-in", http.StatusUnauthorized)
		return
	}

	writeJSON(w, http.StatusOK, api.MeResponse{Email: email.String()})
}
