package picker

import "github.com/atomicstack/font-picker/internal/font"

// Next returns the id the hover moves to on a downward step and whether the
// hover actually changed. With no current hover the first item is targeted;
// at the last item the hover clamps in place.
func Next(view View, hoveredID font.ID) (font.ID, bool) {
	n := view.Len()
	if n == 0 {
		return font.None, false
	}
	idx := view.IndexOf(hoveredID)
	if idx < 0 {
		return view.At(0).ID, true
	}
	if idx >= n-1 {
		return view.At(n - 1).ID, false
	}
	return view.At(idx + 1).ID, true
}

// Prev is the upward counterpart of Next: no hover jumps to the last item,
// the first item clamps.
func Prev(view View, hoveredID font.ID) (font.ID, bool) {
	n := view.Len()
	if n == 0 {
		return font.None, false
	}
	idx := view.IndexOf(hoveredID)
	if idx < 0 {
		return view.At(n - 1).ID, true
	}
	if idx == 0 {
		return view.At(0).ID, false
	}
	return view.At(idx - 1).ID, true
}
