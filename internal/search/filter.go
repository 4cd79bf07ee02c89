// Package search filters the note collection for the UI. It is a pure
// projection: no index, no ranking, full recompute per query.
package search

import (
	"strings"

	"jot/internal/types"
)

// Filter returns the notes matching query as an order-preserving
// subsequence of notes. An empty query matches everything. A note matches
// when the query is a case-insensitive substring of its title, its
// serialized content (markup included), or any one tag.
func Filter(notes []types.Note, query string) []types.Note {
	if query == "" {
		return notes
	}
	needle := strings.ToLower(query)
	out := make([]types.Note, 0, len(notes))
	for _, note := range notes {
		if Matches(note, needle) {
			out = append(out, note)
		}
	}
	return out
}

// Matches reports whether a lowercased needle occurs in the note's title,
// content, or tags.
func Matches(note types.Note, needle string) bool {
	if strings.Contains(strings.ToLower(note.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(note.Content), needle) {
		return true
	}
	for _, tag := range note.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}
