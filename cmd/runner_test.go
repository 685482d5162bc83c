package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/ameziane/coachctl/internal/models"
	"github.com/ameziane/coachctl/internal/shared"
	"github.com/ameziane/coachctl/internal/store"
	tu "github.com/ameziane/coachctl/internal/testing"
	"github.com/urfave/cli/v3"
)

// fakeBackend serves the endpoints the CLI flow tests touch. A request with
// the bearer token "tok-123" is authenticated; everything else gets a 401.
func fakeBackend(t *testing.T) (*httptest.Server, *[]models.AttendanceRecord) {
	t.Helper()
	var saved []models.AttendanceRecord

	user := map[string]any{"id": 1, "name": "Karim", "email": "karim@club.dz", "role": "coach"}
	roster := []models.Athlete{
		{ID: 1, Nom: "Benali", Prenom: "Yacine", Groupe: "U15"},
		{ID: 2, Nom: "Cherif", Prenom: "Amine", Groupe: "U15"},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		tu.WriteEnvelope(t, w, http.StatusOK, true, map[string]any{"token": "tok-123", "user": user}, "")
	})
	mux.HandleFunc("GET /api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-123" {
			tu.WriteEnvelope(t, w, http.StatusUnauthorized, false, nil, "Token invalide")
			return
		}
		tu.WriteEnvelope(t, w, http.StatusOK, true, user, "")
	})
	mux.HandleFunc("GET /api/athletes", func(w http.ResponseWriter, r *http.Request) {
		tu.WriteEnvelope(t, w, http.StatusOK, true, roster, "")
	})
	mux.HandleFunc("GET /api/planning/12", func(w http.ResponseWriter, r *http.Request) {
		event := models.PlanningEvent{
			ID: 12, Titre: "Entraînement technique", Date: "2026-03-14",
			Heure: "18:00", Type: models.EventEntrainement, Groupe: "U15",
		}
		tu.WriteEnvelope(t, w, http.StatusOK, true, event, "")
	})
	mux.HandleFunc("GET /attendance", func(w http.ResponseWriter, r *http.Request) {
		tu.WriteEnvelope(t, w, http.StatusOK, true, []models.AttendanceRecord{}, "")
	})
	mux.HandleFunc("POST /attendance", func(w http.ResponseWriter, r *http.Request) {
		var record models.AttendanceRecord
		if err := decodeBody(r, &record); err != nil {
			t.Errorf("failed to decode attendance record: %v", err)
		}
		saved = append(saved, record)
		tu.WriteEnvelope(t, w, http.StatusOK, true, nil, "")
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, &saved
}

func decodeBody(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

// testRunner wires a Runner against the fake backend with an in-memory database.
func testRunner(t *testing.T, baseURL string) (*Runner, *bytes.Buffer, *cli.Command) {
	t.Helper()
	config := shared.DefaultConfig()
	config.API.BaseURL = baseURL

	output := &bytes.Buffer{}
	runner := NewRunner(RunnerOpts{
		Config: config,
		Output: output,
		DB:     tu.MustOpenDB(t),
	})

	app := &cli.Command{Name: "coachctl", Commands: runner.register()}
	return runner, output, app
}

func TestRunner(t *testing.T) {
	ctx := context.Background()

	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with nil config uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})
			if runner.config == nil {
				t.Error("expected default config to be set")
			}
			if runner.logger == nil {
				t.Error("expected default logger to be set")
			}
			if runner.output != os.Stdout {
				t.Error("expected output to default to os.Stdout")
			}
		})

		t.Run("register covers every command family", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})
			commands := runner.register()
			if len(commands) != 11 {
				t.Errorf("expected 11 top-level commands, got %d", len(commands))
			}
		})
	})

	t.Run("Login Persists Token", func(t *testing.T) {
		server, _ := fakeBackend(t)
		runner, output, app := testRunner(t, server.URL)

		args := []string{"coachctl", "auth", "login", "--email", "karim@club.dz", "--password", "secret"}
		if err := app.Run(ctx, args); err != nil {
			t.Fatalf("login failed: %v", err)
		}

		if !strings.Contains(output.String(), "✓ Connecté en tant que Karim (coach)") {
			t.Errorf("unexpected login output: %s", output.String())
		}

		token, err := store.NewTokenStore(runner.db, nil).Get()
		if err != nil {
			t.Fatalf("failed to read token store: %v", err)
		}
		if token != "tok-123" {
			t.Errorf("expected persisted token, got %q", token)
		}
	})

	t.Run("Authenticated Command Without Token Fails", func(t *testing.T) {
		server, _ := fakeBackend(t)
		_, _, app := testRunner(t, server.URL)

		err := app.Run(ctx, []string{"coachctl", "athlete", "list"})
		if !errors.Is(err, shared.ErrNotAuthenticated) {
			t.Errorf("expected ErrNotAuthenticated, got %v", err)
		}
	})

	t.Run("Attendance Save Flow", func(t *testing.T) {
		server, saved := fakeBackend(t)
		runner, output, app := testRunner(t, server.URL)

		if err := store.NewTokenStore(runner.db, nil).Set("tok-123"); err != nil {
			t.Fatalf("failed to seed token: %v", err)
		}

		args := []string{
			"coachctl", "attendance", "save", "--planning", "12",
			"--all-present", "--set", "2=retard", "--note", "2=bus en retard",
		}
		if err := app.Run(ctx, args); err != nil {
			t.Fatalf("attendance save failed: %v", err)
		}

		if len(*saved) != 2 {
			t.Fatalf("expected 2 saved records, got %d", len(*saved))
		}
		if (*saved)[0].Status != models.StatusPresent {
			t.Errorf("expected athlete 1 present, got %q", (*saved)[0].Status)
		}
		if (*saved)[1].Status != models.StatusRetard || (*saved)[1].Notes != "bus en retard" {
			t.Errorf("unexpected record for athlete 2: %+v", (*saved)[1])
		}
		if !strings.Contains(output.String(), "✓ 2 enregistrement(s) sauvegardé(s)") {
			t.Errorf("unexpected save output: %s", output.String())
		}
	})

	t.Run("List Filter Flags Reach The Backend", func(t *testing.T) {
		admin := map[string]any{"id": 1, "name": "Nadia", "email": "nadia@club.dz", "role": "admin"}
		queries := map[string]string{}

		mux := http.NewServeMux()
		mux.HandleFunc("GET /api/auth/me", func(w http.ResponseWriter, r *http.Request) {
			tu.WriteEnvelope(t, w, http.StatusOK, true, admin, "")
		})
		mux.HandleFunc("GET /api/planning", func(w http.ResponseWriter, r *http.Request) {
			queries["planning"] = r.URL.RawQuery
			tu.WriteEnvelope(t, w, http.StatusOK, true, []models.PlanningEvent{}, "")
		})
		mux.HandleFunc("GET /api/users", func(w http.ResponseWriter, r *http.Request) {
			queries["users"] = r.URL.RawQuery
			tu.WriteEnvelope(t, w, http.StatusOK, true, []models.User{}, "")
		})
		server := httptest.NewServer(mux)
		t.Cleanup(server.Close)

		runner, _, app := testRunner(t, server.URL)
		if err := store.NewTokenStore(runner.db, nil).Set("tok-123"); err != nil {
			t.Fatalf("failed to seed token: %v", err)
		}

		if err := app.Run(ctx, []string{"coachctl", "planning", "list", "--type", "Match"}); err != nil {
			t.Fatalf("planning list failed: %v", err)
		}
		if queries["planning"] != "type=Match" {
			t.Errorf("expected type=Match query, got %q", queries["planning"])
		}

		if err := app.Run(ctx, []string{"coachctl", "admin", "users", "--role", "coach"}); err != nil {
			t.Fatalf("admin users failed: %v", err)
		}
		if queries["users"] != "role=coach" {
			t.Errorf("expected role=coach query, got %q", queries["users"])
		}
	})

	t.Run("Cached Roster Survives Backend Loss", func(t *testing.T) {
		server, _ := fakeBackend(t)
		runner, output, app := testRunner(t, server.URL)

		if err := store.NewTokenStore(runner.db, nil).Set("tok-123"); err != nil {
			t.Fatalf("failed to seed token: %v", err)
		}

		// First fetch populates the cache.
		if err := app.Run(ctx, []string{"coachctl", "athlete", "list"}); err != nil {
			t.Fatalf("athlete list failed: %v", err)
		}

		server.Close()
		output.Reset()

		if err := app.Run(ctx, []string{"coachctl", "athlete", "list", "--cached"}); err != nil {
			t.Fatalf("cached list failed: %v", err)
		}
		if !strings.Contains(output.String(), "Yacine Benali") {
			t.Errorf("expected cached athlete in output: %s", output.String())
		}
	})
}
