package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/ameziane/coachctl/internal/api"
	"github.com/ameziane/coachctl/internal/models"
	"github.com/ameziane/coachctl/internal/session"
	"github.com/ameziane/coachctl/internal/shared"
	"github.com/urfave/cli/v3"
)

// AuthLogin exchanges email/password for a session and persists the token.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	email := cmd.String("email")
	password := cmd.String("password")
	if email == "" || password == "" {
		return fmt.Errorf("%w: email and password are required", shared.ErrMissingArgument)
	}

	if err := r.connect(ctx); err != nil {
		return err
	}

	user, err := r.session.Login(ctx, email, password)
	if err != nil {
		var apiErr *api.APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			return r.writePlainln("✗ %s", apiErr.Message)
		}
		return fmt.Errorf("%w: %v", shared.ErrAuthFailed, err)
	}

	r.logger.Info("logged in", "user", user.Email, "role", user.Role)
	return r.writePlainln("✓ Connecté en tant que %s (%s)", user.Name, user.Role)
}

// AuthRegister creates an account and logs it in.
func (r *Runner) AuthRegister(ctx context.Context, cmd *cli.Command) error {
	input := api.RegisterInput{
		Name:     cmd.String("name"),
		Email:    cmd.String("email"),
		Password: cmd.String("password"),
		Role:     models.Role(cmd.String("role")),
	}
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return fmt.Errorf("%w: name, email and password are required", shared.ErrMissingArgument)
	}

	if err := r.connect(ctx); err != nil {
		return err
	}

	user, err := r.session.Register(ctx, input)
	if err != nil {
		var apiErr *api.APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			return r.writePlainln("✗ %s", apiErr.Message)
		}
		return fmt.Errorf("%w: %v", shared.ErrAuthFailed, err)
	}

	return r.writePlainln("✓ Compte créé: %s (%s)", user.Name, user.Role)
}

// AuthLogout clears the stored token unconditionally.
func (r *Runner) AuthLogout(ctx context.Context, cmd *cli.Command) error {
	if err := r.connect(ctx); err != nil {
		return err
	}

	r.session.Logout(ctx)
	return r.writePlainln("✓ Déconnecté")
}

// AuthWhoami resolves and prints the current user.
func (r *Runner) AuthWhoami(ctx context.Context, cmd *cli.Command) error {
	if err := r.connect(ctx); err != nil {
		return err
	}

	if r.session.Bootstrap(ctx) != session.Authenticated {
		return r.writePlainln("Not logged in")
	}

	user := r.session.CurrentUser()
	if cmd.Bool("json") {
		return r.writeJSON(user, cmd.Bool("pretty"))
	}
	return r.writePlainln("%s <%s> — %s", user.Name, user.Email, user.Role)
}

// AuthStatus prints the session state and the backend this client targets.
func (r *Runner) AuthStatus(ctx context.Context, cmd *cli.Command) error {
	if err := r.connect(ctx); err != nil {
		return err
	}

	state := r.session.Bootstrap(ctx)
	r.writePlainln("Backend: %s (%s)", r.client.BaseURL(), r.config.API.Environment)
	if state == session.Authenticated {
		user := r.session.CurrentUser()
		return r.writePlainln("Session: ✓ %s (%s)", user.Email, user.Role)
	}
	return r.writePlainln("Session: ✗ anonymous")
}

// AuthForgotPassword requests a password reset email.
func (r *Runner) AuthForgotPassword(ctx context.Context, cmd *cli.Command) error {
	email := cmd.String("email")
	if email == "" {
		return fmt.Errorf("%w: email is required", shared.ErrMissingArgument)
	}

	if err := r.connect(ctx); err != nil {
		return err
	}

	if err := r.auth.ForgotPassword(ctx, email); err != nil {
		return err
	}
	return r.writePlainln("✓ Email de réinitialisation envoyé à %s", email)
}

// AuthResetPassword sets a new password from a reset token.
func (r *Runner) AuthResetPassword(ctx context.Context, cmd *cli.Command) error {
	resetToken := cmd.String("token")
	password := cmd.String("password")
	if resetToken == "" || password == "" {
		return fmt.Errorf("%w: token and password are required", shared.ErrMissingArgument)
	}

	if err := r.connect(ctx); err != nil {
		return err
	}

	if err := r.auth.ResetPassword(ctx, resetToken, password); err != nil {
		return err
	}
	return r.writePlainln("✓ Mot de passe réinitialisé")
}
