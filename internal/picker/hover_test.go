package picker

import (
	"testing"

	"github.com/atomicstack/font-picker/internal/font"
)

func testItems(labels ...string) []font.Item {
	items := make([]font.Item, len(labels))
	for i, label := range labels {
		items[i] = font.Item{ID: font.ID(i + 1), Label: label}
	}
	return items
}

func viewOf(version uint64, term string, def, other []font.Item) View {
	return View{Version: version, Term: term, Default: def, Other: other}
}

func TestResolveHoveredPrefersValidHover(t *testing.T) {
	view := viewOf(1, "o", testItems("Excalifont", "Nunito"), nil)

	res := ResolveHovered(view, 2, 1, "o")
	if res.Item == nil || res.Item.ID != 2 {
		t.Fatalf("expected hover to win over selection, got %#v", res.Item)
	}
	if res.Correction != CorrectNone {
		t.Fatalf("expected no correction, got %d", res.Correction)
	}
}

func TestResolveHoveredFallsBackToSelection(t *testing.T) {
	view := viewOf(1, "", testItems("Excalifont", "Nunito"), nil)

	res := ResolveHovered(view, font.None, 1, "")
	if res.Item == nil || res.Item.Label != "Excalifont" {
		t.Fatalf("expected selection fallback, got %#v", res.Item)
	}

	res = ResolveHovered(view, 99, 1, "")
	if res.Item == nil || res.Item.ID != 1 {
		t.Fatalf("expected stale hover to degrade to selection, got %#v", res.Item)
	}
}

func TestResolveHoveredAutoHoverFirstWhileSearching(t *testing.T) {
	view := viewOf(1, "nu", nil, testItems("Nunito", "Virgil"))

	res := ResolveHovered(view, font.None, font.None, "nu")
	if res.Item != nil {
		t.Fatalf("expected undefined resolution this cycle, got %#v", res.Item)
	}
	if res.Correction != CorrectHoverFirst || res.First != 1 {
		t.Fatalf("expected hover-first correction for id 1, got %d/%d", res.Correction, res.First)
	}
}

func TestResolveHoveredClearsOnEmptyResults(t *testing.T) {
	view := viewOf(1, "zz", nil, nil)

	res := ResolveHovered(view, font.None, 3, "zz")
	if res.Item != nil {
		t.Fatalf("expected no resolution, got %#v", res.Item)
	}
	if res.Correction != CorrectClearHover {
		t.Fatalf("expected clear-hover correction, got %d", res.Correction)
	}
}

func TestResolveHoveredEmptyTermStaysQuiet(t *testing.T) {
	view := viewOf(1, "", testItems("Excalifont"), nil)

	res := ResolveHovered(view, font.None, font.None, "")
	if res.Item != nil || res.Correction != CorrectNone {
		t.Fatalf("expected silent undefined resolution, got %#v/%d", res.Item, res.Correction)
	}

	empty := viewOf(1, "", nil, nil)
	res = ResolveHovered(empty, font.None, font.None, "")
	if res.Correction != CorrectNone {
		t.Fatalf("expected no signal for empty view without term, got %d", res.Correction)
	}
}

func TestResolveHoveredWhitespaceTermIsNonEmpty(t *testing.T) {
	view := viewOf(1, " ", nil, testItems("Lilita One"))

	res := ResolveHovered(view, font.None, font.None, " ")
	if res.Correction != CorrectHoverFirst || res.First != 1 {
		t.Fatalf("expected hover-first for a space term, got %d/%d", res.Correction, res.First)
	}

	empty := viewOf(1, " ", nil, nil)
	res = ResolveHovered(empty, font.None, font.None, " ")
	if res.Correction != CorrectClearHover {
		t.Fatalf("expected clear-hover for a space term with no matches, got %d", res.Correction)
	}
}

func TestReconcilerFiresHoverFirstExactlyOnce(t *testing.T) {
	view := viewOf(1, "n", nil, testItems("Nunito", "Virgil"))

	var hovers []font.ID
	leaves := 0
	r := NewReconciler(Hooks{
		OnHover: func(id font.ID) { hovers = append(hovers, id) },
		OnLeave: func() { leaves++ },
	})

	for i := 0; i < 3; i++ {
		if item, _ := r.Reconcile(view, font.None, font.None); item != nil {
			t.Fatalf("expected nil item during correction cycle, got %#v", item)
		}
	}
	if len(hovers) != 1 || hovers[0] != 1 {
		t.Fatalf("expected exactly one OnHover(1), got %v", hovers)
	}
	if leaves != 0 {
		t.Fatalf("expected no OnLeave, got %d", leaves)
	}

	// The caller applied the correction; the next cycle resolves quietly.
	item, applied := r.Reconcile(view, 1, font.None)
	if item == nil || item.ID != 1 {
		t.Fatalf("expected resolved first item, got %#v", item)
	}
	if applied != CorrectNone {
		t.Fatalf("expected no further correction, got %d", applied)
	}
	if len(hovers) != 1 {
		t.Fatalf("expected hover count unchanged, got %v", hovers)
	}
}

func TestReconcilerFiresLeaveOnceOnEmptyResults(t *testing.T) {
	view := viewOf(1, "zz", nil, nil)

	hovers := 0
	leaves := 0
	r := NewReconciler(Hooks{
		OnHover: func(font.ID) { hovers++ },
		OnLeave: func() { leaves++ },
	})

	for i := 0; i < 4; i++ {
		r.Reconcile(view, font.None, font.None)
	}
	if leaves != 1 {
		t.Fatalf("expected exactly one OnLeave, got %d", leaves)
	}
	if hovers != 0 {
		t.Fatalf("expected no OnHover for empty results, got %d", hovers)
	}
}

func TestReconcilerRefiresWhenInputsChange(t *testing.T) {
	leaves := 0
	r := NewReconciler(Hooks{OnLeave: func() { leaves++ }})

	empty1 := viewOf(1, "zz", nil, nil)
	empty2 := viewOf(2, "zz", nil, nil)

	r.Reconcile(empty1, font.None, font.None)
	r.Reconcile(empty1, font.None, font.None)
	r.Reconcile(empty2, font.None, font.None)
	if leaves != 2 {
		t.Fatalf("expected a refire for the new catalog version, got %d", leaves)
	}
}
