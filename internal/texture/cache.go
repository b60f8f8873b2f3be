package texture

import (
	"image"
	"sync"

	"github.com/rs/zerolog/log"

	"dice-cube-renderer/internal/facetex"
	"dice-cube-renderer/internal/pips"
)

// Resolver resolves a face value to its texture.
type Resolver interface {
	Resolve(v pips.FaceValue) *image.NRGBA
}

// Cache is a concurrency-safe face texture cache. Skins from the index take
// priority; everything else is rasterized procedurally.
type Cache struct {
	mu    sync.RWMutex
	items map[pips.FaceValue]*image.NRGBA
	index *Index
	style facetex.Style
}

// NewCache creates a cache backed by index (may be nil) and drawing style st.
func NewCache(index *Index, st facetex.Style) *Cache {
	if index == nil {
		index = BuildIndex("")
	}
	return &Cache{
		items: make(map[pips.FaceValue]*image.NRGBA),
		index: index,
		style: st,
	}
}

// Resolve returns the texture for v, loading or drawing it on first use.
// Out-of-range values get the blank background face.
func (c *Cache) Resolve(v pips.FaceValue) *image.NRGBA {
	// Fast path: read lock
	c.mu.RLock()
	if img, exists := c.items[v]; exists {
		c.mu.RUnlock()
		return img
	}
	c.mu.RUnlock()

	img := c.load(v)

	// Write lock with double-check
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, exists := c.items[v]; exists {
		return existing
	}
	c.items[v] = img
	return img
}

func (c *Cache) load(v pips.FaceValue) *image.NRGBA {
	if path, ok := c.index.ResolvePath(v); ok {
		img, err := LoadTexture(path)
		if err == nil {
			log.Debug().Int("face", int(v)).Str("path", path).Msg("skin loaded")
			return img
		}
		log.Warn().Err(err).Int("face", int(v)).Msg("skin unusable, drawing face")
	}
	return facetex.Face(v, c.style)
}
