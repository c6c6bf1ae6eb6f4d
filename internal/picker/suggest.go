package picker

import (
	"strings"

	"github.com/atomicstack/font-picker/internal/font"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Suggest returns the catalog label closest to a term that matched nothing,
// for the empty-state placeholder. Lowest rank distance wins; ties break
// toward the earlier item. Advisory only: the suggestion never feeds back
// into filtering or hover.
func Suggest(items []font.Item, term string) (string, bool) {
	trimmed := strings.TrimSpace(term)
	if trimmed == "" || len(items) == 0 {
		return "", false
	}
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) == 0 {
		return "", false
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(items) {
		return "", false
	}
	return items[best.OriginalIndex].Label, true
}
