package gfx

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/invaders/internal/core"
)

//go:embed sprites.yaml
var builtinSprites []byte

// ErrUnknownSprite is returned by Load for identifiers with no definition.
var ErrUnknownSprite = errors.New("gfx: unknown sprite")

type spriteDef struct {
	Color string   `yaml:"color"`
	Art   []string `yaml:"art"`
}

// Catalog resolves sprite identifiers to cached Sprites.
// It is safe for concurrent use by multiple sessions.
type Catalog struct {
	mu    sync.Mutex
	defs  map[string]spriteDef
	cache map[string]*Sprite
}

// NewCatalog creates a catalog holding the built-in sprites.
func NewCatalog() (*Catalog, error) {
	c := &Catalog{
		defs:  make(map[string]spriteDef),
		cache: make(map[string]*Sprite),
	}
	if err := c.Merge(builtinSprites); err != nil {
		return nil, fmt.Errorf("gfx: built-in sprites: %w", err)
	}
	return c, nil
}

// Merge adds or replaces sprite definitions from YAML. Replaced sprites
// are dropped from the cache, so Merge belongs before the first Load.
func (c *Catalog) Merge(data []byte) error {
	var defs map[string]spriteDef
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return fmt.Errorf("gfx: cannot parse sprites: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for id, def := range defs {
		c.defs[id] = def
		delete(c.cache, id)
	}
	return nil
}

// MergeFile merges sprite definitions from a YAML file.
func (c *Catalog) MergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("gfx: cannot read sprites %s: %w", path, err)
	}
	return c.Merge(data)
}

// Load resolves a sprite. Repeated calls with the same id return the same
// pointer.
func (c *Catalog) Load(id string) (*Sprite, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if sp, ok := c.cache[id]; ok {
		return sp, nil
	}

	def, ok := c.defs[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownSprite, id)
	}
	if len(def.Art) == 0 {
		return nil, fmt.Errorf("gfx: sprite %q has no art", id)
	}
	color, ok := core.ParseColor(def.Color)
	if !ok {
		return nil, fmt.Errorf("gfx: sprite %q: unknown color %q", id, def.Color)
	}

	sp := newSprite(id, color, def.Art)
	if sp.W == 0 {
		return nil, fmt.Errorf("gfx: sprite %q has empty art", id)
	}
	c.cache[id] = sp
	return sp, nil
}

// IDs returns every defined sprite identifier, sorted.
func (c *Catalog) IDs() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	ids := make([]string, 0, len(c.defs))
	for id := range c.defs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
