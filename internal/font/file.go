package font

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

type fileBadge struct {
	Kind string `toml:"kind"`
	Text string `toml:"text"`
}

type fileEntry struct {
	ID     int        `toml:"id"`
	Label  string     `toml:"label"`
	Hidden bool       `toml:"hidden"`
	Badge  *fileBadge `toml:"badge"`
}

type catalogFile struct {
	Fonts []fileEntry `toml:"fonts"`
}

// LoadFile reads a TOML font catalog. Entries must carry a positive unique id
// and a non-empty label; badge kinds are validated at load time so rendering
// never meets an unknown kind.
func LoadFile(path string) ([]Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes catalog TOML from memory. Split out so tests and the
// reload watcher can share the validation path.
func ParseCatalog(data []byte) ([]Item, error) {
	var file catalogFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(file.Fonts) == 0 {
		return nil, fmt.Errorf("catalog defines no fonts")
	}
	seen := make(map[ID]struct{}, len(file.Fonts))
	items := make([]Item, 0, len(file.Fonts))
	for i, entry := range file.Fonts {
		if entry.ID <= 0 {
			return nil, fmt.Errorf("font %d: id must be positive (got %d)", i, entry.ID)
		}
		id := ID(entry.ID)
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("font %d: duplicate id %d", i, entry.ID)
		}
		seen[id] = struct{}{}
		if strings.TrimSpace(entry.Label) == "" {
			return nil, fmt.Errorf("font %d: label must not be empty", i)
		}
		item := Item{ID: id, Label: entry.Label, Hidden: entry.Hidden}
		if entry.Badge != nil {
			kind, err := ParseBadgeKind(entry.Badge.Kind)
			if err != nil {
				return nil, fmt.Errorf("font %d: %w", i, err)
			}
			text := entry.Badge.Text
			if text == "" {
				text = entry.Badge.Kind
			}
			item.Badge = &Badge{Kind: kind, Text: text}
		}
		items = append(items, item)
	}
	return items, nil
}
