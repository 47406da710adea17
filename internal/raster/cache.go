package raster

import (
	"image"
	"image/color"
	"sync"

	"golang.org/x/image/font"
)

// glyphKey identifies a cached patch: one rune in either the regular or
// the anomaly color.
type glyphKey struct {
	ch      rune
	anomaly bool
}

// GlyphCache is a concurrency-safe cache of unrotated glyph patches. The
// underlying font.Face is not safe for concurrent use, so rasterization
// happens under the write lock.
type GlyphCache struct {
	mu    sync.RWMutex
	items map[glyphKey]*glyphEntry

	face    font.Face
	pad     int
	regular color.Color
	anomaly color.Color
}

type glyphEntry struct {
	img *image.RGBA // nil when the rune has no ink
}

// NewGlyphCache creates a glyph cache rendering with the given face.
// pad is the transparent slack around the ink, in pixels.
func NewGlyphCache(face font.Face, pad int, regular, anomaly color.Color) *GlyphCache {
	return &GlyphCache{
		items:   make(map[glyphKey]*glyphEntry),
		face:    face,
		pad:     pad,
		regular: regular,
		anomaly: anomaly,
	}
}

// Patch returns the unrotated patch for ch, rendering and caching it on
// first use. Returns nil for runes with no ink.
func (c *GlyphCache) Patch(ch rune, anomaly bool) *image.RGBA {
	key := glyphKey{ch: ch, anomaly: anomaly}

	// Fast path: read lock
	c.mu.RLock()
	if entry, exists := c.items[key]; exists {
		c.mu.RUnlock()
		return entry.img
	}
	c.mu.RUnlock()

	// Write lock with double-check
	c.mu.Lock()
	defer c.mu.Unlock()
	if entry, exists := c.items[key]; exists {
		return entry.img
	}

	col := c.regular
	if anomaly {
		col = c.anomaly
	}
	img := renderPatch(c.face, ch, col, c.pad)
	c.items[key] = &glyphEntry{img: img}

	return img
}
