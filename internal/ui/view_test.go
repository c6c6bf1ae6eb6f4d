package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/atomicstack/font-picker/internal/catalog"
	"github.com/atomicstack/font-picker/internal/font"
	"github.com/atomicstack/font-picker/internal/picker"
	tea "github.com/charmbracelet/bubbletea"
)

func builtinModel(t *testing.T, rows int) *Model {
	t.Helper()
	store := catalog.NewStore(font.DefaultIDs())
	snap := store.Replace(font.Builtin())
	m := NewModel(snap, picker.Hooks{}, rows, time.Millisecond)
	m.Open()
	return m
}

func commitTerm(m *Model, term string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(term)}, Props{})
	m.Update(searchDebounceMsg{seq: m.seq}, Props{})
}

func joined(lines []string) string {
	return strings.Join(lines, "\n")
}

func TestViewLinesRendersGroupsWithSeparator(t *testing.T) {
	m := builtinModel(t, 8)
	out := joined(m.viewLines(Props{}, 48))

	for _, label := range []string{"Excalifont", "Nunito", "Comic Shanns", "Cascadia", "Helvetica", "Lilita One", "Virgil"} {
		if !strings.Contains(out, label) {
			t.Fatalf("expected %q in view:\n%s", label, out)
		}
	}
	if !strings.Contains(out, "───") {
		t.Fatalf("expected a group separator:\n%s", out)
	}
	if strings.Contains(out, "Assistant") {
		t.Fatalf("hidden font rendered:\n%s", out)
	}
}

func TestViewLinesMarksSelection(t *testing.T) {
	m := builtinModel(t, 8)
	out := joined(m.viewLines(Props{SelectedID: font.Nunito}, 48))

	if !strings.Contains(out, "✓ Nunito") {
		t.Fatalf("expected selection mark on Nunito:\n%s", out)
	}
	if strings.Count(out, "✓") != 1 {
		t.Fatalf("expected exactly one selection mark:\n%s", out)
	}
}

func TestViewLinesRendersBadge(t *testing.T) {
	m := builtinModel(t, 8)
	out := joined(m.viewLines(Props{}, 48))

	if !strings.Contains(out, " new ") {
		t.Fatalf("expected badge text after Comic Shanns:\n%s", out)
	}
}

func TestViewLinesWindowFollowsHover(t *testing.T) {
	m := builtinModel(t, 3)
	out := joined(m.viewLines(Props{HoveredID: font.Virgil}, 48))

	if !strings.Contains(out, "Virgil") {
		t.Fatalf("expected hovered row visible:\n%s", out)
	}
	if strings.Contains(out, "Excalifont") {
		t.Fatalf("expected top of the list scrolled out:\n%s", out)
	}
}

func TestViewLinesWindowScrollsBackUp(t *testing.T) {
	m := builtinModel(t, 3)
	m.viewLines(Props{HoveredID: font.Virgil}, 48)
	out := joined(m.viewLines(Props{HoveredID: font.Excalifont}, 48))

	if !strings.Contains(out, "Excalifont") {
		t.Fatalf("expected window to follow hover back to the top:\n%s", out)
	}
	if strings.Contains(out, "Virgil") {
		t.Fatalf("expected bottom of the list scrolled out:\n%s", out)
	}
}

func TestViewLinesSeparatorCountsAgainstRowCap(t *testing.T) {
	m := builtinModel(t, 4)
	lines := m.viewLines(Props{HoveredID: font.Cascadia}, 48)

	// Input line plus exactly four visible rows, separator included.
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d:\n%s", len(lines), joined(lines))
	}
	out := joined(lines)
	if !strings.Contains(out, "───") || !strings.Contains(out, "Cascadia") {
		t.Fatalf("expected separator and hovered row in the window:\n%s", out)
	}
	if strings.Contains(out, "Excalifont") {
		t.Fatalf("expected first row pushed out by the separator:\n%s", out)
	}
}

func TestViewLinesPlaceholderOnNoMatches(t *testing.T) {
	m := builtinModel(t, 8)
	commitTerm(m, "zz")
	out := joined(m.viewLines(Props{}, 48))

	if !strings.Contains(out, `No fonts match "zz"`) {
		t.Fatalf("expected placeholder:\n%s", out)
	}
	if strings.Contains(out, "▌") {
		t.Fatalf("expected no rows rendered:\n%s", out)
	}
}

func TestViewLinesSuggestsClosestMatch(t *testing.T) {
	m := builtinModel(t, 8)
	commitTerm(m, "exft")
	out := joined(m.viewLines(Props{}, 48))

	if !strings.Contains(out, "closest match: Excalifont") {
		t.Fatalf("expected a suggestion:\n%s", out)
	}
}

func TestViewLinesTruncatesLongLabels(t *testing.T) {
	m := builtinModel(t, 8)
	out := joined(m.viewLines(Props{}, 10))

	if !strings.Contains(out, "…") {
		t.Fatalf("expected truncated labels at narrow width:\n%s", out)
	}
	if strings.Contains(out, "Excalifont") {
		t.Fatalf("expected long label cut:\n%s", out)
	}
}
