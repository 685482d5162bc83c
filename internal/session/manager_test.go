package session

import (
	"context"
	"errors"
	"testing"

	"github.com/ameziane/coachctl/internal/api"
	"github.com/ameziane/coachctl/internal/models"
	"github.com/ameziane/coachctl/internal/shared"
	tu "github.com/ameziane/coachctl/internal/testing"
)

// fakeAuth is an AuthAPI double with scriptable outcomes.
type fakeAuth struct {
	session  *api.Session
	user     *models.User
	loginErr error
	meErr    error
	meCalls  int
}

func (f *fakeAuth) Login(ctx context.Context, email, password string) (*api.Session, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.session, nil
}

func (f *fakeAuth) Register(ctx context.Context, input api.RegisterInput) (*api.Session, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.session, nil
}

func (f *fakeAuth) Me(ctx context.Context) (*models.User, error) {
	f.meCalls++
	if f.meErr != nil {
		return nil, f.meErr
	}
	return f.user, nil
}

func coach() *models.User {
	return &models.User{ID: 1, Name: "Karim", Email: "karim@club.dz", Role: models.RoleCoach}
}

func TestManager(t *testing.T) {
	ctx := context.Background()

	t.Run("Starts Bootstrapping", func(t *testing.T) {
		m := NewManager(&fakeAuth{}, &tu.MemTokenStore{}, nil)
		if m.State() != Bootstrapping {
			t.Errorf("expected Bootstrapping, got %v", m.State())
		}
		if m.CurrentUser() != nil {
			t.Error("expected no current user before bootstrap")
		}
	})

	t.Run("Bootstrap", func(t *testing.T) {
		t.Run("Valid Token Authenticates", func(t *testing.T) {
			auth := &fakeAuth{user: coach()}
			m := NewManager(auth, &tu.MemTokenStore{Value: "tok-123"}, nil)

			if state := m.Bootstrap(ctx); state != Authenticated {
				t.Fatalf("expected Authenticated, got %v", state)
			}
			if m.CurrentUser() == nil || m.CurrentUser().Email != "karim@club.dz" {
				t.Errorf("expected current user, got %v", m.CurrentUser())
			}
		})

		t.Run("No Token Skips Backend", func(t *testing.T) {
			auth := &fakeAuth{user: coach()}
			m := NewManager(auth, &tu.MemTokenStore{}, nil)

			if state := m.Bootstrap(ctx); state != Anonymous {
				t.Fatalf("expected Anonymous, got %v", state)
			}
			if auth.meCalls != 0 {
				t.Errorf("expected no Me call without a token, got %d", auth.meCalls)
			}
		})

		t.Run("Expired Token Settles Anonymous", func(t *testing.T) {
			auth := &fakeAuth{meErr: &api.APIError{Status: 401, Message: "Token invalide"}}
			m := NewManager(auth, &tu.MemTokenStore{Value: "stale"}, nil)

			if state := m.Bootstrap(ctx); state != Anonymous {
				t.Fatalf("expected Anonymous, got %v", state)
			}
			if m.CurrentUser() != nil {
				t.Error("expected no current user after failed bootstrap")
			}
		})

		t.Run("Unreadable Store Settles Anonymous", func(t *testing.T) {
			store := &tu.MemTokenStore{GetErr: errors.New("disk corrupt")}
			m := NewManager(&fakeAuth{user: coach()}, store, nil)

			if state := m.Bootstrap(ctx); state != Anonymous {
				t.Errorf("expected Anonymous, got %v", state)
			}
		})
	})

	t.Run("Login", func(t *testing.T) {
		t.Run("Persists Token And Authenticates", func(t *testing.T) {
			store := &tu.MemTokenStore{}
			auth := &fakeAuth{session: &api.Session{Token: "tok-456", User: *coach()}}
			m := NewManager(auth, store, nil)

			user, err := m.Login(ctx, "karim@club.dz", "secret")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if m.State() != Authenticated {
				t.Errorf("expected Authenticated, got %v", m.State())
			}
			if user.Role != models.RoleCoach {
				t.Errorf("expected coach, got %q", user.Role)
			}
			if store.Value != "tok-456" {
				t.Errorf("expected persisted token, got %q", store.Value)
			}
		})

		t.Run("Rejected Credentials Stay Anonymous", func(t *testing.T) {
			auth := &fakeAuth{loginErr: &api.APIError{Status: 401, Message: "Email ou mot de passe incorrect"}}
			m := NewManager(auth, &tu.MemTokenStore{}, nil)

			_, err := m.Login(ctx, "karim@club.dz", "wrong")
			if err == nil {
				t.Fatal("expected error for rejected credentials")
			}

			var apiErr *api.APIError
			if !errors.As(err, &apiErr) || apiErr.Message != "Email ou mot de passe incorrect" {
				t.Errorf("expected server message in error, got %v", err)
			}
			if m.State() != Anonymous {
				t.Errorf("expected Anonymous, got %v", m.State())
			}
			if m.CurrentUser() != nil {
				t.Error("expected no current user after failed login")
			}
		})

		t.Run("Store Failure Keeps Session In Memory", func(t *testing.T) {
			store := &tu.MemTokenStore{SetErr: errors.New("disk full")}
			auth := &fakeAuth{session: &api.Session{Token: "tok-789", User: *coach()}}
			m := NewManager(auth, store, nil)

			user, err := m.Login(ctx, "karim@club.dz", "secret")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if user == nil || m.State() != Authenticated {
				t.Error("expected authenticated session despite store failure")
			}
		})
	})

	t.Run("Register Authenticates", func(t *testing.T) {
		store := &tu.MemTokenStore{}
		auth := &fakeAuth{session: &api.Session{Token: "tok-new", User: *coach()}}
		m := NewManager(auth, store, nil)

		input := api.RegisterInput{Name: "Karim", Email: "karim@club.dz", Password: "secret", Role: models.RoleCoach}
		if _, err := m.Register(ctx, input); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if m.State() != Authenticated || store.Value != "tok-new" {
			t.Error("expected authenticated session with persisted token")
		}
	})

	t.Run("Logout", func(t *testing.T) {
		t.Run("Clears Token And User", func(t *testing.T) {
			store := &tu.MemTokenStore{Value: "tok-123"}
			auth := &fakeAuth{user: coach()}
			m := NewManager(auth, store, nil)
			m.Bootstrap(ctx)

			m.Logout(ctx)
			if m.State() != Anonymous {
				t.Errorf("expected Anonymous, got %v", m.State())
			}
			if m.CurrentUser() != nil {
				t.Error("expected no current user after logout")
			}
			if store.Value != "" {
				t.Errorf("expected cleared token, got %q", store.Value)
			}
		})

		t.Run("Succeeds When Store Errors", func(t *testing.T) {
			store := &tu.MemTokenStore{Value: "tok-123", RemErr: errors.New("locked")}
			m := NewManager(&fakeAuth{}, store, nil)

			m.Logout(ctx)
			if m.State() != Anonymous {
				t.Errorf("expected Anonymous, got %v", m.State())
			}
		})
	})

	t.Run("RequireAuth", func(t *testing.T) {
		m := NewManager(&fakeAuth{}, &tu.MemTokenStore{}, nil)
		if err := m.RequireAuth(); !errors.Is(err, shared.ErrNotAuthenticated) {
			t.Errorf("expected ErrNotAuthenticated, got %v", err)
		}

		m.Bootstrap(ctx)
		if err := m.RequireAuth(); !errors.Is(err, shared.ErrNotAuthenticated) {
			t.Errorf("expected ErrNotAuthenticated after anonymous bootstrap, got %v", err)
		}
	})

	t.Run("RequireRole", func(t *testing.T) {
		auth := &fakeAuth{user: coach()}
		m := NewManager(auth, &tu.MemTokenStore{Value: "tok-123"}, nil)
		m.Bootstrap(ctx)

		if err := m.RequireRole(models.RoleCoach, models.RoleAdmin); err != nil {
			t.Errorf("expected coach to pass, got %v", err)
		}
		if err := m.RequireRole(models.RoleAdmin); !errors.Is(err, shared.ErrForbidden) {
			t.Errorf("expected ErrForbidden, got %v", err)
		}
	})
}
