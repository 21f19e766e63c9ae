//go:build unit

package catalog_test

import (
	"testing"

	"aaai-platform/internal/domain/catalog"

	"github.com/stretchr/testify/assert"
)

func TestDocumentationMatchesQuery(t *testing.T) {
	doc := catalog.Documentation{
		ID:      "getting-started",
		Title:   "Getting Started with the Curriculum",
		Content: "Install Python 3.8 or higher before continuing.",
		Tags:    []string{"setup", "python", "pytorch"},
	}

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{name: "matches title case-insensitively", query: "GETTING started", want: true},
		{name: "matches content substring", query: "3.8", want: true},
		{name: "matches tag", query: "PyTorch", want: true},
		{name: "partial tag match", query: "torch", want: true},
		{name: "no match", query: "kubernetes", want: false},
		{name: "empty query matches everything", query: "", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, doc.MatchesQuery(tt.query))
		})
	}
}
