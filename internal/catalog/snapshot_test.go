package catalog

import (
	"reflect"
	"testing"

	"github.com/atomicstack/font-picker/internal/font"
)

func labels(items []font.Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Label
	}
	return out
}

func TestReplacePartitionsDefaultsAndSortsOthers(t *testing.T) {
	store := NewStore([]font.ID{3, 1})
	snap := store.Replace([]font.Item{
		{ID: 1, Label: "Excalifont"},
		{ID: 2, Label: "virgil"},
		{ID: 3, Label: "Comic Shanns"},
		{ID: 4, Label: "Cascadia"},
		{ID: 5, Label: "Helvetica"},
	})

	if got := labels(snap.Default); !reflect.DeepEqual(got, []string{"Comic Shanns", "Excalifont"}) {
		t.Fatalf("expected allow-list order, got %v", got)
	}
	if got := labels(snap.Other); !reflect.DeepEqual(got, []string{"Cascadia", "Helvetica", "virgil"}) {
		t.Fatalf("expected case-insensitive label sort, got %v", got)
	}
}

func TestReplaceExcludesHiddenAndCompactsAllowList(t *testing.T) {
	store := NewStore([]font.ID{1, 7, 2})
	snap := store.Replace([]font.Item{
		{ID: 1, Label: "Excalifont"},
		{ID: 2, Label: "Nunito", Hidden: true},
		{ID: 3, Label: "Virgil"},
	})

	if got := labels(snap.Default); !reflect.DeepEqual(got, []string{"Excalifont"}) {
		t.Fatalf("expected missing and hidden allow-list ids compacted out, got %v", got)
	}
	if got := labels(snap.Other); !reflect.DeepEqual(got, []string{"Virgil"}) {
		t.Fatalf("expected hidden item excluded, got %v", got)
	}
	if snap.Len() != 2 {
		t.Fatalf("expected 2 visible items, got %d", snap.Len())
	}
}

func TestReplaceBumpsVersion(t *testing.T) {
	store := NewStore(nil)
	first := store.Replace([]font.Item{{ID: 1, Label: "Excalifont"}})
	second := store.Replace([]font.Item{{ID: 1, Label: "Excalifont"}})

	if first.Version != 1 || second.Version != 2 {
		t.Fatalf("expected versions 1 and 2, got %d and %d", first.Version, second.Version)
	}
	if got := store.Snapshot().Version; got != 2 {
		t.Fatalf("expected current snapshot at version 2, got %d", got)
	}
}

func TestReplaceDoesNotAliasInput(t *testing.T) {
	store := NewStore(nil)
	items := []font.Item{{ID: 1, Label: "Excalifont"}}
	snap := store.Replace(items)

	items[0].Label = "changed"
	if snap.Other[0].Label != "Excalifont" {
		t.Fatalf("expected snapshot isolated from caller slice, got %q", snap.Other[0].Label)
	}
}

func TestSnapshotFind(t *testing.T) {
	store := NewStore([]font.ID{1})
	snap := store.Replace([]font.Item{
		{ID: 1, Label: "Excalifont"},
		{ID: 2, Label: "Arial"},
	})

	if item, ok := snap.Find(2); !ok || item.Label != "Arial" {
		t.Fatalf("expected to find Arial, got %#v ok=%v", item, ok)
	}
	if _, ok := snap.Find(font.None); ok {
		t.Fatal("expected None to find nothing")
	}
	if _, ok := snap.Find(9); ok {
		t.Fatal("expected unknown id to find nothing")
	}
}

func TestZeroSnapshotBeforeFirstReplace(t *testing.T) {
	store := NewStore([]font.ID{1})
	snap := store.Snapshot()
	if snap.Version != 0 || snap.Len() != 0 {
		t.Fatalf("expected empty version-0 snapshot, got %#v", snap)
	}
}
