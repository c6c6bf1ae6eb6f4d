package picker

import "github.com/atomicstack/font-picker/internal/font"

// View is the filtered, ordered list the picker displays: default fonts
// first, then the rest, each group keeping the relative order the snapshot
// gave it. Version and Term identify the inputs the view was derived from.
type View struct {
	Version uint64
	Term    string
	Default []font.Item
	Other   []font.Item
}

// Len returns the number of items across both groups.
func (v View) Len() int {
	return len(v.Default) + len(v.Other)
}

// Empty reports whether no item matched.
func (v View) Empty() bool {
	return v.Len() == 0
}

// At returns the item at the given flat display index.
func (v View) At(i int) font.Item {
	if i < len(v.Default) {
		return v.Default[i]
	}
	return v.Other[i-len(v.Default)]
}

// IndexOf returns the flat display index of id, or -1 when absent.
func (v View) IndexOf(id font.ID) int {
	if id == font.None {
		return -1
	}
	for i, item := range v.Default {
		if item.ID == id {
			return i
		}
	}
	for i, item := range v.Other {
		if item.ID == id {
			return len(v.Default) + i
		}
	}
	return -1
}

// Flat returns both groups concatenated in display order.
func (v View) Flat() []font.Item {
	flat := make([]font.Item, 0, v.Len())
	flat = append(flat, v.Default...)
	flat = append(flat, v.Other...)
	return flat
}
