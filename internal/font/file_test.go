package font

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleCatalog = `
[[fonts]]
id = 1
label = "Excalifont"

[[fonts]]
id = 2
label = "Nunito"
hidden = true

[[fonts]]
id = 3
label = "Comic Shanns"
[fonts.badge]
kind = "new"
`

func TestParseCatalog(t *testing.T) {
	items, err := ParseCatalog([]byte(sampleCatalog))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 fonts, got %d", len(items))
	}
	if items[0].ID != 1 || items[0].Label != "Excalifont" {
		t.Fatalf("unexpected first item %#v", items[0])
	}
	if !items[1].Hidden {
		t.Fatal("expected Nunito hidden")
	}
	badge := items[2].Badge
	if badge == nil || badge.Kind != BadgeNew || badge.Text != "new" {
		t.Fatalf("expected badge text defaulted to kind, got %#v", badge)
	}
}

func TestParseCatalogRejectsDuplicateIDs(t *testing.T) {
	data := `
[[fonts]]
id = 1
label = "Excalifont"

[[fonts]]
id = 1
label = "Nunito"
`
	_, err := ParseCatalog([]byte(data))
	if err == nil || !strings.Contains(err.Error(), "duplicate id") {
		t.Fatalf("expected duplicate id error, got %v", err)
	}
}

func TestParseCatalogRejectsBadEntries(t *testing.T) {
	cases := []struct {
		name string
		data string
		want string
	}{
		{"zero id", "[[fonts]]\nid = 0\nlabel = \"x\"\n", "id must be positive"},
		{"blank label", "[[fonts]]\nid = 1\nlabel = \"  \"\n", "label must not be empty"},
		{"bad badge", "[[fonts]]\nid = 1\nlabel = \"x\"\n[fonts.badge]\nkind = \"shiny\"\n", "unknown badge kind"},
		{"no fonts", "# empty\n", "no fonts"},
		{"not toml", "fonts = ][", "parse catalog"},
	}
	for _, tc := range cases {
		_, err := ParseCatalog([]byte(tc.data))
		if err == nil || !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%s: expected error containing %q, got %v", tc.name, tc.want, err)
		}
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fonts.toml")
	if err := os.WriteFile(path, []byte(sampleCatalog), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	items, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 fonts, got %d", len(items))
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
