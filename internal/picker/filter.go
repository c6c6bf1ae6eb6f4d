package picker

import (
	"strings"

	"github.com/atomicstack/font-picker/internal/catalog"
	"github.com/atomicstack/font-picker/internal/font"
)

// Compute derives the filtered view for a search term: case-insensitive
// substring match on labels, group order fixed, within-group order
// untouched. Only the empty term matches everything; whitespace is part of
// the term, so "a " matches "Lilita One" but not "Arial". Pure with respect
// to its inputs, so callers may memoize on (snapshot version, term).
func Compute(snap catalog.Snapshot, term string) View {
	needle := strings.ToLower(term)
	return View{
		Version: snap.Version,
		Term:    term,
		Default: matchItems(snap.Default, needle),
		Other:   matchItems(snap.Other, needle),
	}
}

func matchItems(items []font.Item, needle string) []font.Item {
	if needle == "" {
		return font.CloneItems(items)
	}
	matched := make([]font.Item, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Label), needle) {
			matched = append(matched, item)
		}
	}
	return matched
}
