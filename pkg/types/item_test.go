package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagNames(t *testing.T) {
	item := Item{Tags: []Tag{{Name: "coffee"}, {Name: "morning"}}}
	assert.Equal(t, []string{"coffee", "morning"}, item.TagNames())

	assert.Empty(t, Item{}.TagNames())
}

func TestHasNonEmptyTag(t *testing.T) {
	tests := []struct {
		name string
		tags []Tag
		want bool
	}{
		{"nil", nil, false},
		{"empty slice", []Tag{}, false},
		{"blank names only", []Tag{{Name: ""}, {Name: "   "}}, false},
		{"one real tag", []Tag{{Name: ""}, {Name: "coffee"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasNonEmptyTag(tt.tags))
		})
	}
}
