// Package session owns the authentication lifecycle: token persistence,
// current-user bootstrap, login, register and logout.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/ameziane/coachctl/internal/api"
	"github.com/ameziane/coachctl/internal/models"
	"github.com/ameziane/coachctl/internal/shared"
	"github.com/charmbracelet/log"
)

// State is the session lifecycle state.
//
// A fresh Manager starts Bootstrapping and settles into exactly one of
// Authenticated or Anonymous. Login and logout move between the two.
type State int

const (
	Bootstrapping State = iota
	Authenticated
	Anonymous
)

func (s State) String() string {
	switch s {
	case Bootstrapping:
		return "bootstrapping"
	case Authenticated:
		return "authenticated"
	case Anonymous:
		return "anonymous"
	default:
		return ""
	}
}

// AuthAPI is the slice of the auth service the manager depends on.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*api.Session, error)
	Register(ctx context.Context, input api.RegisterInput) (*api.Session, error)
	Me(ctx context.Context) (*models.User, error)
}

// TokenStore is the durable token storage contract.
type TokenStore interface {
	Get() (string, error)
	Set(token string) error
	Remove() error
}

// Manager holds the current user and drives the session state machine.
//
// Invariant: CurrentUser() is non-nil if and only if State() is Authenticated.
// Manager is not safe for concurrent use; the CLI drives it from one goroutine.
type Manager struct {
	auth   AuthAPI
	tokens TokenStore
	logger *log.Logger

	state State
	user  *models.User
}

// NewManager creates a Manager in the Bootstrapping state.
func NewManager(auth AuthAPI, tokens TokenStore, logger *log.Logger) *Manager {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Manager{
		auth:   auth,
		tokens: tokens,
		logger: logger,
		state:  Bootstrapping,
	}
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	return m.state
}

// CurrentUser returns the authenticated user, or nil when anonymous.
func (m *Manager) CurrentUser() *models.User {
	return m.user
}

// Bootstrap resolves an existing login from the stored token.
//
// Any failure along the way (unreadable store, expired token, unreachable
// backend) settles the session as Anonymous without surfacing an error:
// "could not restore a session" and "not logged in" are the same outcome.
func (m *Manager) Bootstrap(ctx context.Context) State {
	token, err := m.tokens.Get()
	if err != nil {
		m.logger.Warn("token store unreadable, starting anonymous", "error", err)
		return m.toAnonymous()
	}
	if token == "" {
		return m.toAnonymous()
	}

	user, err := m.auth.Me(ctx)
	if err != nil {
		// A 401 here just means the stored token expired; stay quiet.
		if !errors.Is(err, shared.ErrNotAuthenticated) {
			m.logger.Warn("session restore failed, starting anonymous", "error", err)
		}
		return m.toAnonymous()
	}

	return m.toAuthenticated(user)
}

// Login authenticates with email/password, persists the token and transitions
// to Authenticated. On failure the session stays (or becomes) Anonymous and
// the server's message is in the returned error.
func (m *Manager) Login(ctx context.Context, email, password string) (*models.User, error) {
	sess, err := m.auth.Login(ctx, email, password)
	if err != nil {
		m.toAnonymous()
		return nil, err
	}

	m.persistToken(sess.Token)
	m.toAuthenticated(&sess.User)
	return m.user, nil
}

// Register creates an account and logs it in, symmetric to Login.
func (m *Manager) Register(ctx context.Context, input api.RegisterInput) (*models.User, error) {
	sess, err := m.auth.Register(ctx, input)
	if err != nil {
		m.toAnonymous()
		return nil, err
	}

	m.persistToken(sess.Token)
	m.toAuthenticated(&sess.User)
	return m.user, nil
}

// Logout clears the stored token and current user unconditionally. It succeeds
// even when the token was already invalid server-side or the store errors.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.tokens.Remove(); err != nil {
		m.logger.Warn("failed to clear stored token", "error", err)
	}
	m.toAnonymous()
}

// RequireAuth returns shared.ErrNotAuthenticated unless a user is logged in.
func (m *Manager) RequireAuth() error {
	if m.state != Authenticated {
		return shared.ErrNotAuthenticated
	}
	return nil
}

// RequireRole returns an error unless the current user holds one of the given
// roles. This only gates CLI commands; the backend enforces authorization
// independently.
func (m *Manager) RequireRole(roles ...models.Role) error {
	if err := m.RequireAuth(); err != nil {
		return err
	}
	for _, role := range roles {
		if m.user.Role == role {
			return nil
		}
	}
	return fmt.Errorf("%w: %s is not one of the permitted roles", shared.ErrForbidden, m.user.Role)
}

func (m *Manager) persistToken(token string) {
	// A store failure leaves the session authenticated in memory only; the
	// next process start will simply bootstrap to Anonymous.
	if err := m.tokens.Set(token); err != nil {
		m.logger.Warn("failed to persist token", "error", err)
	}
}

func (m *Manager) toAuthenticated(user *models.User) State {
	m.user = user
	m.state = Authenticated
	return m.state
}

func (m *Manager) toAnonymous() State {
	m.user = nil
	m.state = Anonymous
	return m.state
}
