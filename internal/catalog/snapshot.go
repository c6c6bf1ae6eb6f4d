package catalog

import (
	"sort"
	"strings"

	"github.com/atomicstack/font-picker/internal/font"
)

// Snapshot is an immutable partitioned view of the catalog: the pinned
// default fonts first (allow-list order, compacted to the ids present),
// then every remaining visible font sorted case-insensitively by label.
type Snapshot struct {
	Version uint64
	Default []font.Item
	Other   []font.Item
}

// Len returns the total number of visible items across both groups.
func (s Snapshot) Len() int {
	return len(s.Default) + len(s.Other)
}

// Find returns the visible item with the given id.
func (s Snapshot) Find(id font.ID) (font.Item, bool) {
	if id == font.None {
		return font.Item{}, false
	}
	for _, item := range s.Default {
		if item.ID == id {
			return item, true
		}
	}
	for _, item := range s.Other {
		if item.ID == id {
			return item, true
		}
	}
	return font.Item{}, false
}

func build(items []font.Item, defaults []font.ID, version uint64) Snapshot {
	visible := make([]font.Item, 0, len(items))
	for _, item := range items {
		if item.Hidden {
			continue
		}
		visible = append(visible, item)
	}
	pinned := make(map[font.ID]struct{}, len(defaults))
	byID := make(map[font.ID]font.Item, len(visible))
	for _, item := range visible {
		byID[item.ID] = item
	}
	def := make([]font.Item, 0, len(defaults))
	for _, id := range defaults {
		item, ok := byID[id]
		if !ok {
			continue
		}
		pinned[id] = struct{}{}
		def = append(def, item)
	}
	other := make([]font.Item, 0, len(visible))
	for _, item := range visible {
		if _, ok := pinned[item.ID]; ok {
			continue
		}
		other = append(other, item)
	}
	sort.SliceStable(other, func(i, j int) bool {
		return strings.ToLower(other[i].Label) < strings.ToLower(other[j].Label)
	})
	return Snapshot{Version: version, Default: def, Other: other}
}
