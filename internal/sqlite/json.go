// Wire record structures for the JSON export/import protocol. The export
// shape is also the import contract, so these structs must stay stable:
// any document produced by an export must be accepted by Import.
package sqlite

// exportDocument is the top-level import/export shape. Both keys are
// optional on import; whichever is present is processed.
type exportDocument struct {
	Items     []itemJSON     `json:"items,omitempty"`
	Templates []templateJSON `json:"templates,omitempty"`
}

// itemsDocument is the items-only export shape.
type itemsDocument struct {
	Items []itemJSON `json:"items"`
}

// templatesDocument is the templates-only export shape.
type templatesDocument struct {
	Templates []templateJSON `json:"templates"`
}

// itemJSON represents one exported item. IDs are carried for reference only;
// import always assigns fresh surrogate ids.
type itemJSON struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Tags     []string        `json:"tags"`
	Criteria []criterionJSON `json:"criteria"`
}

// criterionJSON represents one exported item criterion. Rating is a pointer
// so that an absent or null rating is distinguishable from zero on import;
// such entries are skipped rather than defaulted.
type criterionJSON struct {
	Name   string   `json:"name"`
	Rating *float64 `json:"rating"`
}

// templateJSON represents one exported template. Template criteria are bare
// names, never ratings.
type templateJSON struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Tags     []string `json:"tags"`
	Criteria []string `json:"criteria"`
}
