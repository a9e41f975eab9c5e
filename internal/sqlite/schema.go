// Package sqlite implements the embedded SQLite store for Gourava: schema
// management, item and template repositories, usage aggregation, default
// template seeding, and the JSON import/export protocol.
package sqlite

// Schema DDL. Every statement uses IF NOT EXISTS so initialization is
// idempotent and safe to run on every Open.
const (
	createAppState = `CREATE TABLE IF NOT EXISTS app_state (
    key TEXT PRIMARY KEY,
    value TEXT
);`

	createItems = `CREATE TABLE IF NOT EXISTS items (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT
);`

	createTags = `CREATE TABLE IF NOT EXISTS tags (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    item_id INTEGER,
    name TEXT,
    FOREIGN KEY (item_id) REFERENCES items(id)
);`

	createCriteria = `CREATE TABLE IF NOT EXISTS criteria (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    item_id INTEGER,
    name TEXT,
    rating REAL,
    FOREIGN KEY (item_id) REFERENCES items(id)
);`

	createTemplates = `CREATE TABLE IF NOT EXISTS templates (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT
);`

	createTemplateTags = `CREATE TABLE IF NOT EXISTS template_tags (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    template_id INTEGER,
    name TEXT,
    FOREIGN KEY (template_id) REFERENCES templates(id)
);`

	createTemplateCriteria = `CREATE TABLE IF NOT EXISTS template_criteria (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    template_id INTEGER,
    name TEXT,
    FOREIGN KEY (template_id) REFERENCES templates(id)
);`
)

// Index DDL for the child-row lookups and name grouping queries.
const (
	idxTagsItem             = `CREATE INDEX IF NOT EXISTS idx_tags_item ON tags(item_id);`
	idxTagsName             = `CREATE INDEX IF NOT EXISTS idx_tags_name ON tags(name);`
	idxCriteriaItem         = `CREATE INDEX IF NOT EXISTS idx_criteria_item ON criteria(item_id);`
	idxCriteriaName         = `CREATE INDEX IF NOT EXISTS idx_criteria_name ON criteria(name);`
	idxTemplateTagsTemplate = `CREATE INDEX IF NOT EXISTS idx_template_tags_template ON template_tags(template_id);`
	idxTemplateCritTemplate = `CREATE INDEX IF NOT EXISTS idx_template_criteria_template ON template_criteria(template_id);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createAppState,
	createItems,
	createTags,
	createCriteria,
	createTemplates,
	createTemplateTags,
	createTemplateCriteria,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxTagsItem,
	idxTagsName,
	idxCriteriaItem,
	idxCriteriaName,
	idxTemplateTagsTemplate,
	idxTemplateCritTemplate,
}
