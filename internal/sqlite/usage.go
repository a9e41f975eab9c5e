// Usage aggregation over the global tag and criterion namespaces.
package sqlite

import (
	"context"
	"fmt"

	"github.com/gourava/gourava/pkg/types"
)

// TagUsage groups all tag rows across all items by name and counts
// occurrences. When limit > 0 the result is a random sample of that many
// distinct names, unweighted by count; otherwise the full grouped list
// ordered by descending count.
func (s *Store) TagUsage(ctx context.Context, limit int) ([]types.UsageCount, error) {
	return s.usageCounts(ctx, "tags", limit)
}

// CriterionUsage is TagUsage over the criteria table.
func (s *Store) CriterionUsage(ctx context.Context, limit int) ([]types.UsageCount, error) {
	return s.usageCounts(ctx, "criteria", limit)
}

// usageCounts runs the grouped count query against the given child table.
// table is one of the fixed names "tags" or "criteria", never user input.
func (s *Store) usageCounts(ctx context.Context, table string, limit int) ([]types.UsageCount, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	query := "SELECT name, COUNT(*) AS usage_count FROM " + table + " GROUP BY name ORDER BY usage_count DESC"
	args := []any{}
	if limit > 0 {
		// Random pick among grouped names, deliberately not weighted by
		// count: a "discover something new" surface, not a top-N list.
		query = "SELECT name, COUNT(*) AS usage_count FROM " + table + " GROUP BY name ORDER BY RANDOM() LIMIT ?"
		args = append(args, limit)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s usage: %w", table, err)
	}
	defer rows.Close()

	counts := []types.UsageCount{}
	for rows.Next() {
		var uc types.UsageCount
		if err := rows.Scan(&uc.Name, &uc.Count); err != nil {
			return nil, fmt.Errorf("scan %s usage: %w", table, err)
		}
		counts = append(counts, uc)
	}
	return counts, rows.Err()
}
