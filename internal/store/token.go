package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ameziane/coachctl/internal/shared"
	"github.com/charmbracelet/log"
)

// tokenKey is the single namespaced credentials row holding the bearer token.
const tokenKey = "auth.token"

// TokenStore persists the bearer token in the credentials table.
//
// At most one valid token exists at a time; absence is the anonymous state.
// TokenStore implements api.TokenSource with a fail-open policy: a storage
// read error is logged and treated as logged-out rather than propagated.
type TokenStore struct {
	db     *sql.DB
	logger *log.Logger
}

// NewTokenStore creates a TokenStore over an open, migrated database.
func NewTokenStore(db *sql.DB, logger *log.Logger) *TokenStore {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &TokenStore{db: db, logger: logger}
}

// Token returns the stored bearer token, or "" when none is stored or the
// read fails. A read failure degrades to anonymous.
func (s *TokenStore) Token() string {
	token, err := s.Get()
	if err != nil {
		s.logger.Warn("token store read failed, continuing anonymously", "error", err)
		return ""
	}
	return token
}

// Get returns the stored token, or "" with no error when no token is stored.
func (s *TokenStore) Get() (string, error) {
	var token string
	err := s.db.QueryRow("SELECT value FROM credentials WHERE key = ?", tokenKey).Scan(&token)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", shared.ErrTokenStore, err)
	}
	return token, nil
}

// Set stores the token, replacing any previous one.
func (s *TokenStore) Set(token string) error {
	query := `
		INSERT INTO credentials (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	if _, err := s.db.Exec(query, tokenKey, token, time.Now()); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrTokenStore, err)
	}
	return nil
}

// Remove deletes the stored token. Removing an absent token is not an error.
func (s *TokenStore) Remove() error {
	if _, err := s.db.Exec("DELETE FROM credentials WHERE key = ?", tokenKey); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrTokenStore, err)
	}
	return nil
}
