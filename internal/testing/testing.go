// package testing contains shared testing utilities
package testing

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/ameziane/coachctl/internal/shared"
)

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FCloser simulates a failure when reading a response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// MemTokenStore is an in-memory token store double with optional error injection.
type MemTokenStore struct {
	Value  string
	GetErr error
	SetErr error
	RemErr error
}

func (s *MemTokenStore) Get() (string, error) {
	if s.GetErr != nil {
		return "", s.GetErr
	}
	return s.Value, nil
}

func (s *MemTokenStore) Set(token string) error {
	if s.SetErr != nil {
		return s.SetErr
	}
	s.Value = token
	return nil
}

func (s *MemTokenStore) Remove() error {
	if s.RemErr != nil {
		return s.RemErr
	}
	s.Value = ""
	return nil
}

// Token implements api.TokenSource with the same fail-open contract as the real store.
func (s *MemTokenStore) Token() string {
	token, err := s.Get()
	if err != nil {
		return ""
	}
	return token
}

// MustOpenDB opens an in-memory SQLite database with migrations applied.
func MustOpenDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := shared.RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}
	return db
}

// WriteEnvelope writes a backend-style JSON envelope to an httptest handler's response.
func WriteEnvelope(t *testing.T, w http.ResponseWriter, status int, success bool, data any, message string) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	body := map[string]any{"success": success}
	if data != nil {
		body["data"] = data
	}
	if message != "" {
		body["message"] = message
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		t.Errorf("failed to encode envelope: %v", err)
	}
}
