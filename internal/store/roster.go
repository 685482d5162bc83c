package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ameziane/coachctl/internal/models"
	"github.com/ameziane/coachctl/internal/shared"
)

// RosterCache caches fetched athletes locally so `athlete list --cached` works
// offline. Every successful fetch replaces the cached rows for that group.
type RosterCache struct {
	db *sql.DB
}

// NewRosterCache creates a RosterCache over an open, migrated database.
func NewRosterCache(db *sql.DB) *RosterCache {
	return &RosterCache{db: db}
}

// Replace swaps the cached athletes for a group with a fresh fetch.
// An empty groupe replaces the entire cache.
func (c *RosterCache) Replace(groupe string, athletes []models.Athlete) error {
	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if groupe == "" {
		_, err = tx.Exec("DELETE FROM cached_athletes")
	} else {
		_, err = tx.Exec("DELETE FROM cached_athletes WHERE groupe = ?", groupe)
	}
	if err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}

	insert := `
		INSERT INTO cached_athletes (id, remote_id, nom, prenom, groupe, poste, numero_licence, blesse, payload, cached_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	now := time.Now()
	for _, athlete := range athletes {
		payload, err := json.Marshal(athlete)
		if err != nil {
			return fmt.Errorf("failed to encode athlete %d: %w", athlete.ID, err)
		}

		_, err = tx.Exec(insert,
			shared.GenerateID(), athlete.ID, athlete.Nom, athlete.Prenom,
			athlete.Groupe, athlete.Poste, athlete.NumeroLicence, athlete.Blesse,
			string(payload), now)
		if err != nil {
			return fmt.Errorf("failed to cache athlete %d: %w", athlete.ID, err)
		}
	}

	return tx.Commit()
}

// List returns the cached athletes, optionally filtered by group, ordered by
// name. Returns shared.ErrCacheMiss when nothing has been cached.
func (c *RosterCache) List(groupe string) ([]models.Athlete, error) {
	query := "SELECT payload FROM cached_athletes"
	args := []any{}
	if groupe != "" {
		query += " WHERE groupe = ?"
		args = append(args, groupe)
	}
	query += " ORDER BY nom, prenom"

	rows, err := c.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query cache: %w", err)
	}
	defer rows.Close()

	var athletes []models.Athlete
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan cached athlete: %w", err)
		}

		var athlete models.Athlete
		if err := json.Unmarshal([]byte(payload), &athlete); err != nil {
			return nil, fmt.Errorf("failed to decode cached athlete: %w", err)
		}
		athletes = append(athletes, athlete)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	if len(athletes) == 0 {
		return nil, shared.ErrCacheMiss
	}
	return athletes, nil
}
