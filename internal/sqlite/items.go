// Item repository: add, list, update, delete.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/gourava/gourava/pkg/types"
)

// AddItem inserts a new item with its tags and criterion ratings and returns
// the generated id. The parent insert and all child inserts run in one
// transaction, so a failure leaves no partial aggregate behind.
func (s *Store) AddItem(ctx context.Context, title string, tags []types.Tag, criteria []types.Criterion) (int64, error) {
	db, err := s.conn()
	if err != nil {
		return 0, err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin add item: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, "INSERT INTO items (title) VALUES (?)", title)
	if err != nil {
		return 0, fmt.Errorf("insert item: %w", err)
	}
	itemID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("item id: %w", err)
	}

	if err := insertItemChildren(ctx, tx, itemID, tags, criteria); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit add item: %w", err)
	}
	return itemID, nil
}

// Items returns item aggregates. When limit > 0 the result is a random
// sample of that many items, re-randomized on every call; otherwise all
// items are returned in storage order. An empty store yields an empty slice.
func (s *Store) Items(ctx context.Context, limit int) ([]types.Item, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	var rows *sql.Rows
	if limit > 0 {
		rows, err = db.QueryContext(ctx,
			"SELECT id, title FROM items ORDER BY RANDOM() LIMIT ?", limit)
	} else {
		rows, err = db.QueryContext(ctx, "SELECT id, title FROM items")
	}
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	type itemRow struct {
		id    int64
		title sql.NullString
	}
	var heads []itemRow
	for rows.Next() {
		var r itemRow
		if err := rows.Scan(&r.id, &r.title); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		heads = append(heads, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}

	// Dependent fetch per item. Fine at the expected scale of hundreds.
	results := make([]types.Item, 0, len(heads))
	for _, h := range heads {
		tags, err := itemTags(ctx, db, h.id)
		if err != nil {
			return nil, err
		}
		criteria, err := itemCriteria(ctx, db, h.id)
		if err != nil {
			return nil, err
		}
		results = append(results, types.Item{
			ID:              strconv.FormatInt(h.id, 10),
			Title:           h.title.String,
			Tags:            tags,
			CriteriaRatings: criteria,
		})
	}
	return results, nil
}

// UpdateItem updates the title in place and replaces the item's tag and
// criterion rows wholesale with the given sets. Replacing instead of diffing
// keeps the write path simple and makes the operation idempotent.
func (s *Store) UpdateItem(ctx context.Context, id int64, title string, tags []types.Tag, criteria []types.Criterion) error {
	if id <= 0 {
		return types.ErrInvalidID
	}
	db, err := s.conn()
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin update item: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "UPDATE items SET title = ? WHERE id = ?", title, id); err != nil {
		return fmt.Errorf("update item %d: %w", id, err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM tags WHERE item_id = ?", id); err != nil {
		return fmt.Errorf("clear tags for item %d: %w", id, err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM criteria WHERE item_id = ?", id); err != nil {
		return fmt.Errorf("clear criteria for item %d: %w", id, err)
	}

	if err := insertItemChildren(ctx, tx, id, tags, criteria); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit update item: %w", err)
	}
	return nil
}

// DeleteItem removes an item and its child rows, children before parent
// since the schema declares no cascading delete. Deleting an id that does
// not exist is a no-op.
func (s *Store) DeleteItem(ctx context.Context, id int64) error {
	if id <= 0 {
		return types.ErrInvalidID
	}
	db, err := s.conn()
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete item: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM tags WHERE item_id = ?", id); err != nil {
		return fmt.Errorf("delete tags for item %d: %w", id, err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM criteria WHERE item_id = ?", id); err != nil {
		return fmt.Errorf("delete criteria for item %d: %w", id, err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM items WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete item %d: %w", id, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete item: %w", err)
	}
	return nil
}

// insertItemChildren inserts one tag row and one criterion row per entry,
// bound to itemID, within the caller's transaction.
func insertItemChildren(ctx context.Context, tx *sql.Tx, itemID int64, tags []types.Tag, criteria []types.Criterion) error {
	for _, tag := range tags {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO tags (item_id, name) VALUES (?, ?)", itemID, tag.Name); err != nil {
			return fmt.Errorf("insert tag %q: %w", tag.Name, err)
		}
	}
	for _, c := range criteria {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO criteria (item_id, name, rating) VALUES (?, ?, ?)",
			itemID, c.Name, c.Rating); err != nil {
			return fmt.Errorf("insert criterion %q: %w", c.Name, err)
		}
	}
	return nil
}

// itemTags fetches the tag rows for one item.
func itemTags(ctx context.Context, db *sql.DB, itemID int64) ([]types.Tag, error) {
	rows, err := db.QueryContext(ctx,
		"SELECT name FROM tags WHERE item_id = ?", itemID)
	if err != nil {
		return nil, fmt.Errorf("query tags for item %d: %w", itemID, err)
	}
	defer rows.Close()

	tags := []types.Tag{}
	for rows.Next() {
		var name sql.NullString
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		tags = append(tags, types.Tag{Name: name.String})
	}
	return tags, rows.Err()
}

// itemCriteria fetches the criterion rows for one item.
func itemCriteria(ctx context.Context, db *sql.DB, itemID int64) ([]types.Criterion, error) {
	rows, err := db.QueryContext(ctx,
		"SELECT name, rating FROM criteria WHERE item_id = ?", itemID)
	if err != nil {
		return nil, fmt.Errorf("query criteria for item %d: %w", itemID, err)
	}
	defer rows.Close()

	criteria := []types.Criterion{}
	for rows.Next() {
		var name sql.NullString
		var rating sql.NullFloat64
		if err := rows.Scan(&name, &rating); err != nil {
			return nil, fmt.Errorf("scan criterion: %w", err)
		}
		criteria = append(criteria, types.Criterion{Name: name.String, Rating: rating.Float64})
	}
	return criteria, rows.Err()
}
