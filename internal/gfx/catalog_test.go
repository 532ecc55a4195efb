package gfx

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/invaders/internal/core"
)

func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := NewCatalog()
	if err != nil {
		t.Fatalf("NewCatalog() failed: %v", err)
	}
	return c
}

func TestCatalogBuiltins(t *testing.T) {
	c := newTestCatalog(t)

	for _, id := range []string{
		"player", "small_enemy", "medium_enemy", "large_enemy",
		"player_bullet", "alien_bullet", "explosion", "logo",
	} {
		sp, err := c.Load(id)
		if err != nil {
			t.Errorf("Load(%q) failed: %v", id, err)
			continue
		}
		if sp.W != sp.Cols()*GlyphW || sp.H != sp.Rows()*GlyphH {
			t.Errorf("%s size %dx%d does not match art %dx%d", id, sp.W, sp.H, sp.Cols(), sp.Rows())
		}
	}
}

func TestCatalogLoadIsIdempotent(t *testing.T) {
	c := newTestCatalog(t)

	a, err := c.Load("player")
	if err != nil {
		t.Fatal(err)
	}
	b, err := c.Load("player")
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("repeated Load should return the same sprite")
	}
}

func TestCatalogUnknownSprite(t *testing.T) {
	c := newTestCatalog(t)

	_, err := c.Load("mothership")
	if !errors.Is(err, ErrUnknownSprite) {
		t.Errorf("expected ErrUnknownSprite, got %v", err)
	}
}

func TestCatalogMerge(t *testing.T) {
	c := newTestCatalog(t)

	err := c.Merge([]byte(`
player:
  color: red
  art: ["AB", "C"]
broken:
  color: chartreuse
  art: ["x"]
`))
	if err != nil {
		t.Fatalf("Merge() failed: %v", err)
	}

	sp, err := c.Load("player")
	if err != nil {
		t.Fatal(err)
	}
	if sp.Color != core.ColorRed || sp.W != 2*GlyphW || sp.H != 2*GlyphH {
		t.Errorf("override not applied: %+v", sp)
	}
	// Short rows are padded with transparent glyphs.
	if sp.At(GlyphW, GlyphH) != ' ' {
		t.Errorf("padded glyph = %q, expected space", sp.At(GlyphW, GlyphH))
	}

	if _, err := c.Load("broken"); err == nil {
		t.Error("expected error for unknown color")
	}
}

func TestCatalogMergeFile(t *testing.T) {
	c := newTestCatalog(t)

	if err := c.MergeFile(filepath.Join(t.TempDir(), "none.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "extra.yaml")
	if err := os.WriteFile(path, []byte("ufo:\n  art: [\"<=>\"]\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := c.MergeFile(path); err != nil {
		t.Fatalf("MergeFile() failed: %v", err)
	}
	sp, err := c.Load("ufo")
	if err != nil {
		t.Fatal(err)
	}
	if sp.Cols() != 3 || sp.Color != core.ColorDefault {
		t.Errorf("ufo = %+v", sp)
	}

	found := false
	for _, id := range c.IDs() {
		if id == "ufo" {
			found = true
		}
	}
	if !found {
		t.Error("IDs() should list merged sprite")
	}
}
