package font

import "fmt"

// ID identifies a font in the catalog. Zero is reserved for "no font".
type ID int

// None is the absent-font sentinel used for hover and selection props.
const None ID = 0

// Well-known catalog ids. The numbering is part of the catalog file format,
// so new entries are appended rather than reordered.
const (
	Excalifont ID = iota + 1
	Nunito
	ComicShanns
	Virgil
	Helvetica
	Cascadia
	LilitaOne
	Assistant
)

// BadgeKind classifies the decorative tag rendered after a font label.
type BadgeKind int

const (
	BadgeNew BadgeKind = iota + 1
	BadgeBeta
)

// ParseBadgeKind maps a catalog-file badge kind to its enum value.
func ParseBadgeKind(kind string) (BadgeKind, error) {
	switch kind {
	case "new":
		return BadgeNew, nil
	case "beta":
		return BadgeBeta, nil
	default:
		return 0, fmt.Errorf("unknown badge kind %q", kind)
	}
}

// Badge is a purely presentational tag; it never affects filtering or order.
type Badge struct {
	Kind BadgeKind
	Text string
}

// Item represents a selectable font entry.
type Item struct {
	ID     ID
	Label  string
	Hidden bool
	Badge  *Badge
}

// DefaultIDs returns the fixed allow-list of fonts pinned to the top of the
// picker, in display order. Ids missing from the catalog are compacted out
// when a snapshot is built.
func DefaultIDs() []ID {
	return []ID{Excalifont, Nunito, ComicShanns}
}

// Builtin returns the catalog shipped with the binary, used when no catalog
// file is configured.
func Builtin() []Item {
	return []Item{
		{ID: Excalifont, Label: "Excalifont"},
		{ID: Nunito, Label: "Nunito"},
		{ID: ComicShanns, Label: "Comic Shanns", Badge: &Badge{Kind: BadgeNew, Text: "new"}},
		{ID: Virgil, Label: "Virgil"},
		{ID: Helvetica, Label: "Helvetica"},
		{ID: Cascadia, Label: "Cascadia"},
		{ID: LilitaOne, Label: "Lilita One"},
		{ID: Assistant, Label: "Assistant", Hidden: true},
	}
}

// CloneItems produces a shallow copy of the provided items.
func CloneItems(items []Item) []Item {
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}
