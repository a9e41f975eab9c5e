package types

import "strings"

// Tag is a free-form label attached to an item. Duplicate names across items
// are expected; they drive usage aggregation.
type Tag struct {
	Name string `json:"name"`
}

// Criterion is a named grading criterion with a numeric rating. Ratings are
// conventionally half-integers in [0, 5]; the store persists whatever value
// it is given and leaves range validation to the caller.
type Criterion struct {
	Name   string  `json:"name"`
	Rating float64 `json:"rating"`
}

// Item is a graded thing together with its tags and criterion ratings.
// ID is the surrogate row id rendered as a string.
type Item struct {
	ID              string      `json:"id"`
	Title           string      `json:"title"`
	Tags            []Tag       `json:"tags"`
	CriteriaRatings []Criterion `json:"criteriaRatings"`
}

// TagNames returns the item's tag names in storage order.
func (i Item) TagNames() []string {
	names := make([]string, len(i.Tags))
	for n, t := range i.Tags {
		names[n] = t.Name
	}
	return names
}

// HasNonEmptyTag reports whether at least one tag has a non-blank name.
// The creation contract requires this before an item is persisted; the
// check belongs to the caller, not the store.
func HasNonEmptyTag(tags []Tag) bool {
	for _, t := range tags {
		if strings.TrimSpace(t.Name) != "" {
			return true
		}
	}
	return false
}
