package api

import (
	"context"
	"fmt"

	"github.com/ameziane/coachctl/internal/models"
	"github.com/ameziane/coachctl/internal/shared"
)

// AuthService maps authentication operations onto gateway calls.
type AuthService struct {
	client *Client
}

// NewAuthService creates an AuthService over the given gateway client.
func NewAuthService(client *Client) *AuthService {
	return &AuthService{client: client}
}

// Session is the token/user pair returned by login and register.
type Session struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// RegisterInput contains the fields for account creation. Role must be one of
// the recognized roles; the backend is the authority on further validation.
type RegisterInput struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     models.Role `json:"role"`
}

// Login exchanges credentials for a bearer token and the authenticated user.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	body := map[string]string{"email": email, "password": password}

	var session Session
	if err := s.client.Post(ctx, "/api/auth/login", body, &session); err != nil {
		return nil, err
	}
	if session.Token == "" {
		return nil, fmt.Errorf("%w: login response missing token", shared.ErrMalformedResponse)
	}
	return &session, nil
}

// Register creates an account and returns its first session.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*Session, error) {
	if !input.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", shared.ErrInvalidInput, input.Role)
	}

	var session Session
	if err := s.client.Post(ctx, "/api/auth/register", input, &session); err != nil {
		return nil, err
	}
	if session.Token == "" {
		return nil, fmt.Errorf("%w: register response missing token", shared.ErrMalformedResponse)
	}
	return &session, nil
}

// Me resolves the current user from the attached bearer token.
//
// A 401 is the expected answer when no valid token is attached; callers detect
// it with errors.Is(err, shared.ErrNotAuthenticated) and treat it as anonymous
// rather than as a failure worth logging.
func (s *AuthService) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := s.client.Get(ctx, "/api/auth/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ForgotPassword requests a password reset email for the given address.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return s.client.Post(ctx, "/api/auth/forgot-password", body, nil)
}

// ResetPassword sets a new password using a reset token from the email flow.
func (s *AuthService) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	body := map[string]string{"token": resetToken, "password": newPassword}
	return s.client.Post(ctx, "/api/auth/reset-password", body, nil)
}
