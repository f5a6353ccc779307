package api

// Request DTOs

type SignupRequest struct {
	Email       string `json:"email" validate:"required"`
	Password    string `json:"password" validate:"required"`
	Requires2FA bool   `json:"requires2FA"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type Verify2FARequest struct {
	Email          string `json:"email" validate:"required"`
	LoginAttemptID string `json:"loginAttemptId" validate:"required"`
	TwoFACode      string `json:"2FACode" validate:"required"`
}

type VerifyTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

// Response DTOs

type SignupResponse struct {
	Message string `json:"message"`
}

type TwoFactorAuthResponse struct {
	Message        string `json:"message"`
	LoginAttemptID string `json:"loginAttemptId"`
}

type LoginResponse struct {
	Message     string `json:"message"`
	AccessToken string `json:"access_token,omitempty"` // Token for non-cookie clients (mobile, API clients)
}

type MeResponse struct {
	Email string `json:"email"`
}
