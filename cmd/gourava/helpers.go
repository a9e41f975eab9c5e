// Shared helpers for gourava CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/gourava/gourava/internal/sqlite"
	"github.com/gourava/gourava/pkg/types"
)

// openStore resolves the data directory, constructs a Store, and opens it.
// The caller must defer store.Close().
func openStore() (*sqlite.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}

	store := sqlite.NewStore(sqlite.WithLogger(logger))
	if err := store.Open(cfg); err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	return store, nil
}

// parseID parses a positional id argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

// parseTags maps repeated --tag values to tag entries, rejecting blank names.
func parseTags(values []string) ([]types.Tag, error) {
	tags := make([]types.Tag, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return nil, fmt.Errorf("tag name must not be blank")
		}
		tags = append(tags, types.Tag{Name: v})
	}
	return tags, nil
}

// parseCriteria parses repeated --criterion values of the form "Name=Rating",
// e.g. "Taste=4.5". Ratings are conventionally half-steps in [0, 5].
func parseCriteria(values []string) ([]types.Criterion, error) {
	criteria := make([]types.Criterion, 0, len(values))
	for _, v := range values {
		name, ratingStr, ok := strings.Cut(v, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("invalid criterion %q, expected Name=Rating", v)
		}
		rating, err := strconv.ParseFloat(ratingStr, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid rating in %q: %w", v, err)
		}
		criteria = append(criteria, types.Criterion{Name: name, Rating: rating})
	}
	return criteria, nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(output))
	return nil
}
