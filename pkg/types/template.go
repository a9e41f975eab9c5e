package types

// Template pre-fills tags and criterion names for a common item category.
// Templates carry no ratings; criteria are prompts only. Items created from
// a template copy its lists at creation time and keep no link back, so
// editing a template never touches existing items.
type Template struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Tags     []string `json:"tags"`
	Criteria []string `json:"criteria"`
}

// UsageCount is one row of a tag or criterion usage aggregation: a distinct
// name and the number of rows carrying it across all items.
type UsageCount struct {
	Name  string `json:"name"`
	Count int    `json:"usage_count"`
}
