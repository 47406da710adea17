package raster

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
)

// renderPatch draws one rune in the given color onto a fresh transparent
// patch, with pad pixels of slack on every side. The ink box sits exactly
// at (pad, pad). Returns nil for runes with no ink.
func renderPatch(face font.Face, ch rune, col color.Color, pad int) *image.RGBA {
	bounds, _ := font.BoundString(face, string(ch))
	w := (bounds.Max.X - bounds.Min.X).Ceil()
	h := (bounds.Max.Y - bounds.Min.Y).Ceil()
	if w <= 0 || h <= 0 {
		return nil
	}

	patch := image.NewRGBA(image.Rect(0, 0, w+2*pad, h+2*pad))
	d := &font.Drawer{
		Dst:  patch,
		Src:  image.NewUniform(col),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(pad) - bounds.Min.X,
			Y: fixed.I(pad) - bounds.Min.Y,
		},
	}
	d.DrawString(string(ch))

	return patch
}

// rotatePatch rotates a patch counterclockwise on screen by angleDeg,
// expanding the canvas so no ink is clipped, with Catmull-Rom resampling.
func rotatePatch(src *image.RGBA, angleDeg float64) *image.RGBA {
	if angleDeg == 0 {
		return src
	}

	phi := angleDeg * math.Pi / 180
	c, s := math.Cos(phi), math.Sin(phi)

	sb := src.Bounds()
	w := float64(sb.Dx())
	h := float64(sb.Dy())
	rw := int(math.Ceil(math.Abs(w*c) + math.Abs(h*s)))
	rh := int(math.Ceil(math.Abs(w*s) + math.Abs(h*c)))

	// Pixel Y grows downward, so a counterclockwise rotation on screen
	// flips the sign of the off-diagonal terms.
	cx, cy := w/2, h/2
	dcx, dcy := float64(rw)/2, float64(rh)/2
	m := f64.Aff3{
		c, s, dcx - (c*cx + s*cy),
		-s, c, dcy - (-s*cx + c*cy),
	}

	dst := image.NewRGBA(image.Rect(0, 0, rw, rh))
	xdraw.CatmullRom.Transform(dst, m, src, sb, xdraw.Src, nil)

	return dst
}
