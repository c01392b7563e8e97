package application

import (
	"strings"

	"github.com/mzansibiz/mzansibiz-services/api/internal/public/domain"
)

// SearchIndex holds the full fetched collection and derives the visible
// subset from a free-text query. The subset is recomputed from the full
// collection on every query change; there is no incremental structure,
// a linear rescan is acceptable at directory sizes.
type SearchIndex struct {
	entries []domain.DirectoryEntry
}

// NewSearchIndex builds an index over the fetched collection.
func NewSearchIndex(entries []domain.DirectoryEntry) *SearchIndex {
	return &SearchIndex{entries: entries}
}

// Apply returns the visible subset for the query. An empty query yields
// the full collection in its original order. Otherwise an entry is
// visible when its business name or category contains the query as a
// case-insensitive substring.
func (i *SearchIndex) Apply(query string) []domain.DirectoryEntry {
	if query == "" {
		return append([]domain.DirectoryEntry{}, i.entries...)
	}

	needle := strings.ToLower(query)
	visible := make([]domain.DirectoryEntry, 0, len(i.entries))
	for _, entry := range i.entries {
		if strings.Contains(strings.ToLower(entry.BusinessName), needle) ||
			strings.Contains(strings.ToLower(entry.Category), needle) {
			visible = append(visible, entry)
		}
	}
	return visible
}
