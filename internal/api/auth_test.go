package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ameziane/coachctl/internal/models"
	"github.com/ameziane/coachctl/internal/shared"
	tu "github.com/ameziane/coachctl/internal/testing"
)

func TestAuthService(t *testing.T) {
	ctx := context.Background()

	t.Run("Login", func(t *testing.T) {
		t.Run("Returns Token And User", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/api/auth/login" {
					t.Errorf("unexpected path %s", r.URL.Path)
				}
				data := map[string]any{
					"token": "tok-123",
					"user":  map[string]any{"id": 1, "name": "Karim", "email": "karim@club.dz", "role": "coach"},
				}
				tu.WriteEnvelope(t, w, http.StatusOK, true, data, "")
			}))
			defer server.Close()

			auth := NewAuthService(NewClient(server.URL, StaticToken(""), ClientOpts{}))
			session, err := auth.Login(ctx, "karim@club.dz", "secret")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if session.Token != "tok-123" {
				t.Errorf("expected token 'tok-123', got %q", session.Token)
			}
			if session.User.Role != models.RoleCoach {
				t.Errorf("expected coach role, got %q", session.User.Role)
			}
		})

		t.Run("Missing Token Is Malformed", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				data := map[string]any{"user": map[string]any{"id": 1}}
				tu.WriteEnvelope(t, w, http.StatusOK, true, data, "")
			}))
			defer server.Close()

			auth := NewAuthService(NewClient(server.URL, StaticToken(""), ClientOpts{}))
			_, err := auth.Login(ctx, "karim@club.dz", "secret")
			if !errors.Is(err, shared.ErrMalformedResponse) {
				t.Errorf("expected ErrMalformedResponse, got %v", err)
			}
		})

		t.Run("Server Message Survives", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				tu.WriteEnvelope(t, w, http.StatusUnauthorized, false, nil, "Email ou mot de passe incorrect")
			}))
			defer server.Close()

			auth := NewAuthService(NewClient(server.URL, StaticToken(""), ClientOpts{}))
			_, err := auth.Login(ctx, "karim@club.dz", "wrong")
			if err == nil {
				t.Fatal("expected error for rejected credentials")
			}

			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected *APIError, got %T", err)
			}
			if apiErr.Message != "Email ou mot de passe incorrect" {
				t.Errorf("expected server message, got %q", apiErr.Message)
			}
		})
	})

	t.Run("Register Rejects Unknown Role", func(t *testing.T) {
		auth := NewAuthService(NewClient("http://localhost:5000", StaticToken(""), ClientOpts{}))
		_, err := auth.Register(ctx, RegisterInput{Name: "K", Email: "k@club.dz", Password: "x", Role: "president"})
		if !errors.Is(err, shared.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("Me", func(t *testing.T) {
		t.Run("Resolves Current User", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Header.Get("Authorization") != "Bearer tok-123" {
					t.Errorf("expected bearer token, got %q", r.Header.Get("Authorization"))
				}
				data := map[string]any{"id": 1, "name": "Karim", "email": "karim@club.dz", "role": "coach"}
				tu.WriteEnvelope(t, w, http.StatusOK, true, data, "")
			}))
			defer server.Close()

			auth := NewAuthService(NewClient(server.URL, StaticToken("tok-123"), ClientOpts{}))
			user, err := auth.Me(ctx)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if user.Email != "karim@club.dz" {
				t.Errorf("expected email, got %q", user.Email)
			}
		})

		t.Run("Expired Token Is Not Authenticated", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				tu.WriteEnvelope(t, w, http.StatusUnauthorized, false, nil, "Token invalide")
			}))
			defer server.Close()

			auth := NewAuthService(NewClient(server.URL, StaticToken("stale"), ClientOpts{}))
			_, err := auth.Me(ctx)
			if !errors.Is(err, shared.ErrNotAuthenticated) {
				t.Errorf("expected ErrNotAuthenticated, got %v", err)
			}
		})
	})
}
