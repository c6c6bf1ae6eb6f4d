package picker

import "github.com/atomicstack/font-picker/internal/font"

// Correction describes the hover fix-up a resolution asks the caller to
// apply when no item can be resolved from the current inputs.
type Correction int

const (
	// CorrectNone: the resolution stands on its own, nothing to report.
	CorrectNone Correction = iota
	// CorrectHoverFirst: hover the first filtered item so the next cycle
	// resolves it (auto-hover-first-result while searching).
	CorrectHoverFirst
	// CorrectClearHover: the search matched nothing; clear the caller's
	// hover so downstream derived state is invalidated.
	CorrectClearHover
)

// Resolution is the outcome of a hover derivation: the resolved item (nil
// when none) plus the correction the caller should apply. First carries the
// target id for CorrectHoverFirst.
type Resolution struct {
	Item       *font.Item
	Correction Correction
	First      font.ID
}

// ResolveHovered derives the hovered item from the filtered view and the
// caller-owned hover/selection props. Priority: a hover still present in the
// view wins, then the selection, then the search-driven corrections. The
// function is total and pure; corrections are described, never applied.
func ResolveHovered(view View, hoveredID, selectedID font.ID, term string) Resolution {
	if idx := view.IndexOf(hoveredID); idx >= 0 {
		item := view.At(idx)
		return Resolution{Item: &item}
	}
	if idx := view.IndexOf(selectedID); idx >= 0 {
		item := view.At(idx)
		return Resolution{Item: &item}
	}
	if term == "" {
		return Resolution{}
	}
	if view.Empty() {
		return Resolution{Correction: CorrectClearHover}
	}
	return Resolution{Correction: CorrectHoverFirst, First: view.At(0).ID}
}

// Hooks are the five outbound notifications the picker issues. All are
// fire-and-forget; nil hooks are skipped.
type Hooks struct {
	OnSelect func(font.ID)
	OnHover  func(font.ID)
	OnLeave  func()
	OnOpen   func()
	OnClose  func()
}

type reconcileKey struct {
	version  uint64
	term     string
	hovered  font.ID
	selected font.ID
}

// Reconciler applies hover corrections through hooks, at most once per
// distinct (view, hover, selection, term) tuple. Repeating a reconcile with
// unchanged inputs returns the same item and fires nothing, which is what
// stops the caller-notification loop: a hook handler that re-renders with
// the same inputs lands on the memo.
type Reconciler struct {
	Hooks Hooks

	last reconcileKey
	seen bool
}

// NewReconciler creates a reconciler bound to the supplied hooks.
func NewReconciler(hooks Hooks) *Reconciler {
	return &Reconciler{Hooks: hooks}
}

// Reconcile resolves the hovered item and synchronously applies any
// correction before returning, so the caller's next render already sees a
// consistent hover value. The returned Correction reports what was applied
// on this call; a memo hit reports CorrectNone even when the underlying
// resolution still describes one.
func (r *Reconciler) Reconcile(view View, hoveredID, selectedID font.ID) (*font.Item, Correction) {
	res := ResolveHovered(view, hoveredID, selectedID, view.Term)
	key := reconcileKey{version: view.Version, term: view.Term, hovered: hoveredID, selected: selectedID}
	if r.seen && key == r.last {
		return res.Item, CorrectNone
	}
	r.last = key
	r.seen = true
	switch res.Correction {
	case CorrectHoverFirst:
		if r.Hooks.OnHover != nil {
			r.Hooks.OnHover(res.First)
		}
	case CorrectClearHover:
		if r.Hooks.OnLeave != nil {
			r.Hooks.OnLeave()
		}
	}
	return res.Item, res.Correction
}
