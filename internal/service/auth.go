package service

import (
	"fmt"
	"net/http"

	"github.com/itchan-dev/authd/internal/domain"
	"github.com/itchan-dev/authd/internal/errors"
	"github.com/itchan-dev/authd/internal/logger"
)

type AuthService interface {
	Signup(email, password string, requires2FA bool) error
	Login(email, password string) (LoginResult, error)
	Verify2FA(email, loginAttemptID, code string) (string, error)
	VerifyToken(token string) (domain.Email, error)
	Logout(token string) error
}

// LoginResult is either an issued access token or a pending two-factor
// challenge. The code itself is never part of the result; it travels only
// through the notifier.
type LoginResult struct {
	AccessToken    string
	TwoFARequired  bool
	LoginAttemptID string
}

type UserStore interface {
	AddUser(user domain.User) error
	GetUser(email domain.Email) (domain.User, error)
	ValidateUser(email domain.Email, password domain.Password) error
}

type TwoFACodeStore interface {
	AddCode(email domain.Email, id domain.LoginAttemptID, code domain.TwoFACode) error
	GetCode(email domain.Email) (domain.LoginAttemptID, domain.TwoFACode, error)
	RemoveCode(email domain.Email) error
}

type BannedTokenStore interface {
	Add(token string) error
	Contains(token string) (bool, error)
}

type TokenService interface {
	NewToken(email domain.Email) (string, error)
	DecodeToken(jwtStr string) (domain.Email, error)
}

type Notifier interface {
	Send(recipientEmail, subject, body string) error
}

type Auth struct {
	users    UserStore
	codes    TwoFACodeStore
	banned   BannedTokenStore
	tokens   TokenService
	notifier Notifier
}

func NewAuth(users UserStore, codes TwoFACodeStore, banned BannedTokenStore, tokens TokenService, notifier Notifier) *Auth {
	return &Auth{
		users:    users,
		codes:    codes,
		banned:   banned,
		tokens:   tokens,
		notifier: notifier,
	}
}

// Signup registers a new account. Credentials are validated before any
// store is touched.
func (a *Auth) Signup(email, password string, requires2FA bool) error {
	parsedEmail, err := domain.ParseEmail(email)
	if err != nil {
		return errors.New("Invalid credentials", http.StatusBadRequest)
	}
	parsedPassword, err := domain.ParsePassword(password)
	if err != nil {
		return errors.New("Invalid credentials", http.StatusBadRequest)
	}

	user := domain.User{Email: parsedEmail, Password: parsedPassword, Requires2FA: requires2FA}
	if err := a.users.AddUser(user); err != nil {
		if errors.IsConflict(err) {
			return err
		}
		logger.Log.Error("failed to add user", "error", err)
		return fmt.Errorf("failed to add user: %w", err)
	}

	return nil
}

// Login validates the credential pair and either issues an access token
// directly or, for accounts with 2FA enabled, stores a fresh challenge and
// sends the code to the account email.
//
// "User not found" and "wrong password" are deliberately collapsed into one
// outcome so the response does not reveal which emails have accounts.
func (a *Auth) Login(email, password string) (LoginResult, error) {
	parsedEmail, err := domain.ParseEmail(email)
	if err != nil {
		return LoginResult{}, errors.New("Invalid credentials", http.StatusBadRequest)
	}
	parsedPassword, err := domain.ParsePassword(password)
	if err != nil {
		return LoginResult{}, errors.New("Invalid credentials", http.StatusBadRequest)
	}

	if err := a.users.ValidateUser(parsedEmail, parsedPassword); err != nil {
		if errors.IsNotFound(err) || errors.IsStatus(err, http.StatusUnauthorized) {
			return LoginResult{}, errors.New("Incorrect credentials", http.StatusUnauthorized)
		}
		logger.Log.Error("failed to validate credentials", "error", err)
		return LoginResult{}, fmt.Errorf("failed to validate credentials: %w", err)
	}

	user, err := a.users.GetUser(parsedEmail)
	if err != nil {
		logger.Log.Error("failed to fetch user after validation", "error", err)
		return LoginResult{}, fmt.Errorf("failed to fetch user: %w", err)
	}

	if !user.Requires2FA {
		token, err := a.tokens.NewToken(parsedEmail)
		if err != nil {
			logger.Log.Error("failed to create token", "error", err)
			return LoginResult{}, fmt.Errorf("failed to create token: %w", err)
		}
		return LoginResult{AccessToken: token}, nil
	}

	loginAttemptID := domain.NewLoginAttemptID()
	code := domain.GenerateTwoFACode()

	if err := a.codes.AddCode(parsedEmail, loginAttemptID, code); err != nil {
		logger.Log.Error("failed to store 2fa challenge", "error", err)
		return LoginResult{}, fmt.Errorf("failed to store 2fa challenge: %w", err)
	}

	emailBody := fmt.Sprintf(`
		Hello,

		Your verification code below

		%s

		If you did not request this, please ignore this email.
	`, code)

	// On delivery failure the stored challenge stays in place; the caller
	// retries the whole login, which replaces it.
	if err := a.notifier.Send(parsedEmail.String(), "Your verification code", emailBody); err != nil {
		logger.Log.Error("failed to send 2fa code", "error", err)
		return LoginResult{}, fmt.Errorf("failed to send 2fa code: %w", err)
	}

	return LoginResult{TwoFARequired: true, LoginAttemptID: string(loginAttemptID)}, nil
}

// Verify2FA consumes the pending challenge and issues an access token when
// both the attempt id and the code exactly match the stored pair.
func (a *Auth) Verify2FA(email, loginAttemptID, code string) (string, error) {
	parsedEmail, err := domain.ParseEmail(email)
	if err != nil {
		return "", errors.New("Invalid credentials", http.StatusBadRequest)
	}
	parsedID, err := domain.ParseLoginAttemptID(loginAttemptID)
	if err != nil {
		return "", errors.New("Invalid credentials", http.StatusBadRequest)
	}
	parsedCode, err := domain.ParseTwoFACode(code)
	if err != nil {
		return "", errors.New("Invalid credentials", http.StatusBadRequest)
	}

	storedID, storedCode, err := a.codes.GetCode(parsedEmail)
	if err != nil {
		if errors.IsNotFound(err) {
			return "", errors.New("Incorrect credentials", http.StatusUnauthorized)
		}
		logger.Log.Error("failed to fetch 2fa challenge", "error", err)
		return "", fmt.Errorf("failed to fetch 2fa challenge: %w", err)
	}

	// both fields must match, no partial credit
	if storedID != parsedID || storedCode != parsedCode {
		return "", errors.New("Incorrect credentials", http.StatusUnauthorized)
	}

	if err := a.codes.RemoveCode(parsedEmail); err != nil {
		logger.Log.Error("failed to remove consumed 2fa challenge", "error", err)
		return "", fmt.Errorf("failed to remove 2fa challenge: %w", err)
	}

	token, err := a.tokens.NewToken(parsedEmail)
	if err != nil {
		logger.Log.Error("failed to create token", "error", err)
		return "", fmt.Errorf("failed to create token: %w", err)
	}

	return token, nil
}

// VerifyToken decodes the token and rejects it if it has been revoked.
func (a *Auth) VerifyToken(token string) (domain.Email, error) {
	if token == "" {
		return "", errors.New("Missing token", http.StatusBadRequest)
	}

	email, err := a.tokens.DecodeToken(token)
	if err != nil {
		return "", errors.New("Invalid token", http.StatusUnauthorized)
	}

	banned, err := a.banned.Contains(token)
	if err != nil {
		logger.Log.Error("failed to check banned tokens", "error", err)
		return "", fmt.Errorf("failed to check banned tokens: %w", err)
	}
	if banned {
		return "", errors.New("Invalid token", http.StatusUnauthorized)
	}

	return email, nil
}

// Logout revokes the session token. A second logout with the same token
// fails: the token is already in the banned store by then.
func (a *Auth) Logout(token string) error {
	if _, err := a.VerifyToken(token); err != nil {
		return err
	}

	if err := a.banned.Add(token); err != nil {
		logger.Log.Error("failed to ban token", "error", err)
		return fmt.Errorf("failed to ban token: %w", err)
	}

	return nil
}
