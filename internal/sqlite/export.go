// JSON export and import. Export output is valid import input; importing an
// export reproduces the same content modulo surrogate id reassignment.
package sqlite

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/gourava/gourava/pkg/types"
)

// ExportItems serializes every item, with its tag-name list and criterion
// {name, rating} list, into one indented JSON document.
func (s *Store) ExportItems(ctx context.Context) ([]byte, error) {
	items, err := s.exportItemRecords(ctx)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(itemsDocument{Items: items}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal items export: %w", err)
	}
	return data, nil
}

// ExportTemplates serializes every template, with its tag and criterion name
// lists, into one indented JSON document.
func (s *Store) ExportTemplates(ctx context.Context) ([]byte, error) {
	templates, err := s.exportTemplateRecords(ctx)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(templatesDocument{Templates: templates}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal templates export: %w", err)
	}
	return data, nil
}

// ExportAll serializes items and templates into one document.
func (s *Store) ExportAll(ctx context.Context) ([]byte, error) {
	items, err := s.exportItemRecords(ctx)
	if err != nil {
		return nil, err
	}
	templates, err := s.exportTemplateRecords(ctx)
	if err != nil {
		return nil, err
	}
	doc := struct {
		Items     []itemJSON     `json:"items"`
		Templates []templateJSON `json:"templates"`
	}{Items: items, Templates: templates}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal export: %w", err)
	}
	return data, nil
}

// Import parses a document matching the export schema and inserts its items
// and templates with fresh surrogate ids. A parse failure aborts the whole
// import. Malformed item criterion entries (blank name or missing rating)
// are skipped with a logged warning; the rest of the record still lands.
func (s *Store) Import(ctx context.Context, data []byte) error {
	var doc exportDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse import document: %w", err)
	}

	for _, rec := range doc.Items {
		tags := make([]types.Tag, 0, len(rec.Tags))
		for _, name := range rec.Tags {
			tags = append(tags, types.Tag{Name: name})
		}

		if rec.Criteria == nil {
			s.log.Warn("imported item has no criteria", zap.String("title", rec.Title))
		}
		criteria := make([]types.Criterion, 0, len(rec.Criteria))
		for _, c := range rec.Criteria {
			if c.Name == "" || c.Rating == nil {
				s.log.Warn("skipping invalid criterion",
					zap.String("item", rec.Title), zap.String("name", c.Name))
				continue
			}
			criteria = append(criteria, types.Criterion{Name: c.Name, Rating: *c.Rating})
		}

		if _, err := s.AddItem(ctx, rec.Title, tags, criteria); err != nil {
			return fmt.Errorf("import item %q: %w", rec.Title, err)
		}
	}

	for _, rec := range doc.Templates {
		if _, err := s.CreateTemplate(ctx, rec.Name, rec.Tags, rec.Criteria); err != nil {
			return fmt.Errorf("import template %q: %w", rec.Name, err)
		}
	}

	return nil
}

// exportItemRecords loads all items and maps them to wire records.
func (s *Store) exportItemRecords(ctx context.Context) ([]itemJSON, error) {
	items, err := s.Items(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("export items: %w", err)
	}

	records := make([]itemJSON, 0, len(items))
	for _, item := range items {
		criteria := make([]criterionJSON, 0, len(item.CriteriaRatings))
		for _, c := range item.CriteriaRatings {
			rating := c.Rating
			criteria = append(criteria, criterionJSON{Name: c.Name, Rating: &rating})
		}
		records = append(records, itemJSON{
			ID:       item.ID,
			Title:    item.Title,
			Tags:     item.TagNames(),
			Criteria: criteria,
		})
	}
	return records, nil
}

// exportTemplateRecords loads all templates and maps them to wire records.
func (s *Store) exportTemplateRecords(ctx context.Context) ([]templateJSON, error) {
	templates, err := s.Templates(ctx)
	if err != nil {
		return nil, fmt.Errorf("export templates: %w", err)
	}

	records := make([]templateJSON, 0, len(templates))
	for _, t := range templates {
		records = append(records, templateJSON{
			ID:       t.ID,
			Name:     t.Name,
			Tags:     t.Tags,
			Criteria: t.Criteria,
		})
	}
	return records, nil
}
