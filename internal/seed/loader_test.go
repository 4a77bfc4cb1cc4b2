package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vmedia/showreel/internal/domain"
)

func TestLoader_Load(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seed.yaml")

	content := `portfolioItems:
  - id: "100"
    type: video
    title: Showcase Reel
    url: https://youtu.be/abc12345678
    thumbnail: https://example.com/thumb.jpg
  - id: "101"
    type: video
    title: ""
    url: https://youtu.be/def12345678
    thumbnail: https://example.com/thumb2.jpg
contactInfo:
  email: seeded@example.com
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	ds, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if len(ds.Entries) != 1 {
		t.Fatalf("expected invalid entry dropped, got %d entries", len(ds.Entries))
	}
	if ds.Entries[0].ID != "100" {
		t.Errorf("ID = %q, want %q", ds.Entries[0].ID, "100")
	}
	if ds.Profile.Email != "seeded@example.com" {
		t.Errorf("Email = %q, want seeded value", ds.Profile.Email)
	}
	if ds.Profile.Bio == "" {
		t.Error("expected bio backfilled from bundled defaults")
	}
}

func TestLoader_Load_MissingFile(t *testing.T) {
	if _, err := NewLoader(filepath.Join(t.TempDir(), "nope.yaml")).Load(); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoader_Load_NoValidEntries(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seed.yaml")
	if err := os.WriteFile(path, []byte("contactInfo:\n  phone: \"099\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	ds, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(ds.Entries) != len(Default().Entries) {
		t.Errorf("expected bundled entries as fallback, got %d", len(ds.Entries))
	}
	if ds.Profile.Phone != "099" {
		t.Errorf("Phone = %q, want %q", ds.Profile.Phone, "099")
	}
}

func TestDefault_ReturnsCopy(t *testing.T) {
	a := Default()
	a.Entries[0].Title = "mutated"
	if b := Default(); b.Entries[0].Title == "mutated" {
		t.Error("Default() shares backing array with callers")
	}
	for i, e := range Default().Entries {
		if err := e.Validate(); err != nil {
			t.Errorf("bundled entry %d invalid: %v", i, err)
		}
	}
	var _ domain.Dataset = Default()
}
