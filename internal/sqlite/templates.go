// Template repository: create, list, get, update, delete.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/gourava/gourava/pkg/types"
)

// CreateTemplate inserts a new template with its tag and criterion name
// lists and returns the generated id. Template criteria carry no rating;
// they are prompts copied onto items at creation time.
func (s *Store) CreateTemplate(ctx context.Context, name string, tags, criteria []string) (int64, error) {
	db, err := s.conn()
	if err != nil {
		return 0, err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin create template: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, "INSERT INTO templates (name) VALUES (?)", name)
	if err != nil {
		return 0, fmt.Errorf("insert template: %w", err)
	}
	templateID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("template id: %w", err)
	}

	if err := insertTemplateChildren(ctx, tx, templateID, tags, criteria); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit create template: %w", err)
	}
	return templateID, nil
}

// Templates returns all templates with their tag and criterion name lists.
// An empty store yields an empty slice.
func (s *Store) Templates(ctx context.Context) ([]types.Template, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, "SELECT id, name FROM templates")
	if err != nil {
		return nil, fmt.Errorf("query templates: %w", err)
	}
	defer rows.Close()

	type tmplRow struct {
		id   int64
		name sql.NullString
	}
	var heads []tmplRow
	for rows.Next() {
		var r tmplRow
		if err := rows.Scan(&r.id, &r.name); err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		heads = append(heads, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate templates: %w", err)
	}

	results := make([]types.Template, 0, len(heads))
	for _, h := range heads {
		tags, criteria, err := templateChildren(ctx, db, h.id)
		if err != nil {
			return nil, err
		}
		results = append(results, types.Template{
			ID:       strconv.FormatInt(h.id, 10),
			Name:     h.name.String,
			Tags:     tags,
			Criteria: criteria,
		})
	}
	return results, nil
}

// TemplateByID returns one template aggregate. When no template has the
// given id it returns types.ErrNotFound rather than an empty value, so
// callers can distinguish absence from an unnamed template.
func (s *Store) TemplateByID(ctx context.Context, id int64) (*types.Template, error) {
	if id <= 0 {
		return nil, types.ErrInvalidID
	}
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	var name sql.NullString
	err = db.QueryRowContext(ctx,
		"SELECT name FROM templates WHERE id = ?", id,
	).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get template %d: %w", id, err)
	}

	tags, criteria, err := templateChildren(ctx, db, id)
	if err != nil {
		return nil, err
	}

	return &types.Template{
		ID:       strconv.FormatInt(id, 10),
		Name:     name.String,
		Tags:     tags,
		Criteria: criteria,
	}, nil
}

// UpdateTemplate updates the name in place and replaces the template's tag
// and criterion rows wholesale, the same strategy the item repository uses.
func (s *Store) UpdateTemplate(ctx context.Context, id int64, name string, tags, criteria []string) error {
	if id <= 0 {
		return types.ErrInvalidID
	}
	db, err := s.conn()
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin update template: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "UPDATE templates SET name = ? WHERE id = ?", name, id); err != nil {
		return fmt.Errorf("update template %d: %w", id, err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM template_tags WHERE template_id = ?", id); err != nil {
		return fmt.Errorf("clear tags for template %d: %w", id, err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM template_criteria WHERE template_id = ?", id); err != nil {
		return fmt.Errorf("clear criteria for template %d: %w", id, err)
	}

	if err := insertTemplateChildren(ctx, tx, id, tags, criteria); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit update template: %w", err)
	}
	return nil
}

// DeleteTemplate removes a template and its child rows, children before
// parent. Deleting an id that does not exist is a no-op. Items created from
// the template are untouched; they hold copies, not references.
func (s *Store) DeleteTemplate(ctx context.Context, id int64) error {
	if id <= 0 {
		return types.ErrInvalidID
	}
	db, err := s.conn()
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete template: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM template_tags WHERE template_id = ?", id); err != nil {
		return fmt.Errorf("delete tags for template %d: %w", id, err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM template_criteria WHERE template_id = ?", id); err != nil {
		return fmt.Errorf("delete criteria for template %d: %w", id, err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM templates WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete template %d: %w", id, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete template: %w", err)
	}
	return nil
}

// insertTemplateChildren inserts one template_tags row and one
// template_criteria row per name, within the caller's transaction.
func insertTemplateChildren(ctx context.Context, tx *sql.Tx, templateID int64, tags, criteria []string) error {
	for _, tag := range tags {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO template_tags (template_id, name) VALUES (?, ?)", templateID, tag); err != nil {
			return fmt.Errorf("insert template tag %q: %w", tag, err)
		}
	}
	for _, criterion := range criteria {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO template_criteria (template_id, name) VALUES (?, ?)", templateID, criterion); err != nil {
			return fmt.Errorf("insert template criterion %q: %w", criterion, err)
		}
	}
	return nil
}

// templateChildren fetches the tag and criterion name lists for one template.
func templateChildren(ctx context.Context, db *sql.DB, templateID int64) (tags, criteria []string, err error) {
	tags, err = templateNames(ctx, db,
		"SELECT name FROM template_tags WHERE template_id = ?", templateID)
	if err != nil {
		return nil, nil, fmt.Errorf("query tags for template %d: %w", templateID, err)
	}
	criteria, err = templateNames(ctx, db,
		"SELECT name FROM template_criteria WHERE template_id = ?", templateID)
	if err != nil {
		return nil, nil, fmt.Errorf("query criteria for template %d: %w", templateID, err)
	}
	return tags, criteria, nil
}

// templateNames runs a single-column name query and collects the results.
func templateNames(ctx context.Context, db *sql.DB, query string, templateID int64) ([]string, error) {
	rows, err := db.QueryContext(ctx, query, templateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name sql.NullString
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name.String)
	}
	return names, rows.Err()
}
