package catalog

import (
	"strings"
	"time"
)

type Documentation struct {
	ID          string
	Title       string
	Content     string
	Category    string
	Tags        []string
	LastUpdated time.Time
}

// MatchesQuery reports whether the document contains the query as a
// case-insensitive substring of its title, content, or any tag.
func (d Documentation) MatchesQuery(query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(d.Title), q) || strings.Contains(strings.ToLower(d.Content), q) {
		return true
	}
	for _, tag := range d.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
