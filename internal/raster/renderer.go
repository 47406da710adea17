package raster

import (
	"image"
	"image/draw"

	"textspiral-renderer/internal/compose"
)

// Renderer rasterizes composed frames at a fixed canvas size. Safe for
// concurrent use: the background is read-only and the glyph cache carries
// its own lock.
type Renderer struct {
	size   int
	center int
	maxR   int
	bg     *image.RGBA
	cache  *GlyphCache
}

// NewRenderer builds a renderer drawing onto copies of background with
// glyphs from cache. margin is the canvas border kept clear of the spiral.
func NewRenderer(size, margin int, background *image.RGBA, cache *GlyphCache) *Renderer {
	center := size / 2
	return &Renderer{
		size:   size,
		center: center,
		maxR:   center - margin,
		bg:     background,
		cache:  cache,
	}
}

// Frame rasterizes one composed frame. The zoom maps the frame's maximum
// visible adjusted radius onto the canvas radius inside the margin, so the
// spiral fills the canvas up to the margin regardless of how much text is
// shown.
func (r *Renderer) Frame(f compose.Frame) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.size, r.size))
	copy(img.Pix, r.bg.Pix)

	scale := 1.0
	if f.MaxRadius > 0 {
		scale = float64(r.maxR) / f.MaxRadius
	}

	for _, cd := range f.Chars {
		patch := r.cache.Patch(cd.Char, cd.Anomaly)
		if patch == nil {
			continue
		}

		sx := r.center + int(cd.X*scale)
		sy := r.center - int(cd.Y*scale)

		rot := rotatePatch(patch, cd.Angle)
		rb := rot.Bounds()
		px := int(float64(sx) - float64(rb.Dx())/2)
		py := int(float64(sy) - float64(rb.Dy())/2)

		draw.Draw(img, image.Rect(px, py, px+rb.Dx(), py+rb.Dy()), rot, rb.Min, draw.Over)
	}

	return img
}
