// Built-in template seeding, run once per store lifetime on first launch.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// app_state keys.
const (
	stateKeyInitialized = "initialized"
	stateKeyInstallID   = "install_id"
)

// builtInTemplate describes a template to seed on first launch.
type builtInTemplate struct {
	name     string
	tags     []string
	criteria []string
}

// builtInTemplates defines the templates created on first-ever launch.
var builtInTemplates = []builtInTemplate{
	{
		name:     "Pizza",
		tags:     []string{"Italian", "Fast Food", "Pizza"},
		criteria: []string{"Taste", "Flavor Blend", "Firmness"},
	},
	{
		name:     "Movie",
		tags:     []string{"Movie"},
		criteria: []string{"Length", "Enjoyment", "Soundtrack"},
	},
	{
		name:     "Clothes",
		tags:     []string{"Clothing"},
		criteria: []string{"Comfort", "Quality", "Price"},
	},
}

// Seed creates the built-in templates and writes the one-time initialized
// marker. It is a no-op when the marker is already present. Each template is
// guarded by a by-name existence check, so a crash mid-seed leaves a state
// the next Seed call can finish from (at-least-once, not exactly-once).
func (s *Store) Seed(ctx context.Context) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	initialized, err := s.stateValue(ctx, db, stateKeyInitialized)
	if err != nil {
		return fmt.Errorf("read initialized marker: %w", err)
	}
	if initialized != "" {
		return nil
	}

	for _, bt := range builtInTemplates {
		var exists int
		err := db.QueryRowContext(ctx,
			"SELECT 1 FROM templates WHERE name = ?", bt.name,
		).Scan(&exists)
		if err == nil {
			continue // left behind by a partial prior seed
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("check template %s: %w", bt.name, err)
		}

		id, err := s.CreateTemplate(ctx, bt.name, bt.tags, bt.criteria)
		if err != nil {
			return fmt.Errorf("seed template %s: %w", bt.name, err)
		}
		s.log.Info("seeded built-in template",
			zap.String("name", bt.name), zap.Int64("id", id))
	}

	// The marker is written only after all templates were attempted.
	if err := s.setState(ctx, db, stateKeyInstallID, generateInstallID()); err != nil {
		return fmt.Errorf("write install id: %w", err)
	}
	if err := s.setState(ctx, db, stateKeyInitialized, "true"); err != nil {
		return fmt.Errorf("write initialized marker: %w", err)
	}

	return nil
}

// stateValue reads a single app_state value. Returns "" when the key is absent.
func (s *Store) stateValue(ctx context.Context, db *sql.DB, key string) (string, error) {
	var value sql.NullString
	err := db.QueryRowContext(ctx,
		"SELECT value FROM app_state WHERE key = ?", key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value.String, nil
}

// setState writes an app_state key, replacing any existing value.
func (s *Store) setState(ctx context.Context, db *sql.DB, key, value string) error {
	_, err := db.ExecContext(ctx,
		"INSERT OR REPLACE INTO app_state (key, value) VALUES (?, ?)", key, value,
	)
	return err
}

// generateInstallID returns a UUID v7 identifying this installation.
func generateInstallID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
