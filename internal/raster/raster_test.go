package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font"

	"textspiral-renderer/internal/compose"
)

func testFace(t *testing.T) font.Face {
	t.Helper()
	face, err := LoadFace("", 18)
	if err != nil {
		t.Fatalf("LoadFace: %v", err)
	}
	return face
}

func TestLoadFaceFallback(t *testing.T) {
	if _, err := LoadFace(filepath.Join(t.TempDir(), "missing.ttf"), 18); err != nil {
		t.Errorf("missing font should fall back, got %v", err)
	}

	junk := filepath.Join(t.TempDir(), "junk.ttf")
	if err := os.WriteFile(junk, []byte("not a font"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFace(junk, 18); err != nil {
		t.Errorf("unparseable font should fall back, got %v", err)
	}
}

func TestRenderPatch(t *testing.T) {
	face := testFace(t)

	patch := renderPatch(face, 'A', color.RGBA{0, 0, 0, 255}, 4)
	if patch == nil {
		t.Fatal("patch for 'A' is nil")
	}
	b := patch.Bounds()
	if b.Dx() < 9 || b.Dy() < 9 {
		t.Errorf("patch %v too small for an 18px glyph with padding", b)
	}

	ink := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if patch.RGBAAt(x, y).A > 128 {
				ink++
				// The outermost two rows and columns stay clear; the pad
				// leaves that much slack around the ink box.
				if x < 2 || y < 2 || x >= b.Max.X-2 || y >= b.Max.Y-2 {
					t.Fatalf("ink leaked into the pad ring at (%d, %d)", x, y)
				}
			}
		}
	}
	if ink == 0 {
		t.Error("patch for 'A' carries no ink")
	}
}

func TestRenderPatchNoInk(t *testing.T) {
	face := testFace(t)
	if patch := renderPatch(face, ' ', color.RGBA{0, 0, 0, 255}, 4); patch != nil {
		t.Errorf("space produced a %v patch, want nil", patch.Bounds())
	}
}

func TestRotatePatchExpands(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 30, 12))

	quarter := rotatePatch(src, 90)
	qb := quarter.Bounds()
	if abs(qb.Dx()-12) > 1 || abs(qb.Dy()-30) > 1 {
		t.Errorf("90 degrees: bounds %v, want ~12x30", qb)
	}

	half := rotatePatch(src, 180)
	hb := half.Bounds()
	if abs(hb.Dx()-30) > 1 || abs(hb.Dy()-12) > 1 {
		t.Errorf("180 degrees: bounds %v, want ~30x12", hb)
	}

	if same := rotatePatch(src, 0); same != src {
		t.Error("zero rotation should pass the patch through")
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestGlyphCacheReuse(t *testing.T) {
	cache := NewGlyphCache(testFace(t), 4, color.RGBA{A: 255}, color.RGBA{R: 255, A: 255})

	p1 := cache.Patch('A', false)
	p2 := cache.Patch('A', false)
	if p1 == nil || p1 != p2 {
		t.Error("repeated lookups should return the cached patch")
	}

	if p3 := cache.Patch('A', true); p3 == p1 {
		t.Error("anomaly color must not share the regular patch")
	}

	if sp := cache.Patch(' ', false); sp != nil {
		t.Error("space should cache as nil")
	}
}

func TestGlyphCacheConcurrent(t *testing.T) {
	cache := NewGlyphCache(testFace(t), 4, color.RGBA{A: 255}, color.RGBA{R: 255, A: 255})

	done := make(chan *image.RGBA, 16)
	for g := 0; g < 16; g++ {
		ch := rune('a' + g%4)
		go func() {
			done <- cache.Patch(ch, false)
		}()
	}
	for g := 0; g < 16; g++ {
		if <-done == nil {
			t.Error("concurrent lookup returned nil for a letter")
		}
	}
}

func testRenderer(t *testing.T) *Renderer {
	t.Helper()
	cache := NewGlyphCache(testFace(t), 4, color.RGBA{A: 255}, color.RGBA{R: 255, A: 255})
	bg := SolidBackground(200, color.RGBA{255, 255, 255, 255})
	return NewRenderer(200, 20, bg, cache)
}

func TestRendererFrameInkAtCenter(t *testing.T) {
	r := testRenderer(t)

	frame := compose.Frame{
		Visible:   1,
		MaxRadius: 1e-6,
		Chars:     []compose.CharDraw{{Char: 'a', X: 0, Y: 0, Angle: 0}},
	}
	img := r.Frame(frame)

	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 200 {
		t.Fatalf("bounds = %v, want 200x200", b)
	}

	ink := 0
	for y := 75; y < 125; y++ {
		for x := 75; x < 125; x++ {
			c := img.RGBAAt(x, y)
			if c.R < 250 || c.G < 250 || c.B < 250 {
				ink++
			}
		}
	}
	if ink == 0 {
		t.Error("no ink near canvas center")
	}

	if c := img.RGBAAt(2, 2); c.R != 255 || c.G != 255 || c.B != 255 {
		t.Errorf("corner = %+v, want untouched background", c)
	}
}

func TestRendererFrameAnomalyColor(t *testing.T) {
	r := testRenderer(t)

	frame := compose.Frame{
		Visible:   1,
		MaxRadius: 1e-6,
		Chars:     []compose.CharDraw{{Char: 'W', X: 0, Y: 0, Angle: 0, Anomaly: true}},
	}
	img := r.Frame(frame)

	red := 0
	for y := 60; y < 140; y++ {
		for x := 60; x < 140; x++ {
			c := img.RGBAAt(x, y)
			if c.R >= 200 && c.G <= 80 && c.B <= 80 {
				red++
			}
		}
	}
	if red == 0 {
		t.Error("anomaly glyph left no red pixels")
	}
}

func TestRendererFrameRotatedGlyph(t *testing.T) {
	r := testRenderer(t)

	frame := compose.Frame{
		Visible:   1,
		MaxRadius: 40,
		Chars:     []compose.CharDraw{{Char: 'k', X: 30, Y: 20, Angle: 137.5, Anomaly: false}},
	}
	img := r.Frame(frame)

	ink := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.RGBAAt(x, y)
			if c.R < 250 {
				ink++
			}
		}
	}
	if ink == 0 {
		t.Error("rotated glyph left no ink")
	}
}

func TestRendererFrameDeterministic(t *testing.T) {
	r := testRenderer(t)
	frame := compose.Frame{
		Visible:   2,
		MaxRadius: 10,
		Chars: []compose.CharDraw{
			{Char: 'a', X: 3, Y: 4, Angle: 30},
			{Char: 'b', X: -5, Y: 2, Angle: 200},
		},
	}

	a := r.Frame(frame)
	b := r.Frame(frame)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("identical frames rendered differently")
	}
}

func TestSolidBackground(t *testing.T) {
	bg := SolidBackground(32, color.RGBA{10, 20, 30, 255})
	if b := bg.Bounds(); b.Dx() != 32 || b.Dy() != 32 {
		t.Fatalf("bounds = %v, want 32x32", b)
	}
	if c := bg.RGBAAt(16, 16); c.R != 10 || c.G != 20 || c.B != 30 || c.A != 255 {
		t.Errorf("fill = %+v, want 10/20/30/255", c)
	}
}

func TestLoadBackground(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 10, 6))
	for y := 0; y < 6; y++ {
		for x := 0; x < 10; x++ {
			src.SetRGBA(x, y, color.RGBA{0, 128, 255, 255})
		}
	}
	path := filepath.Join(t.TempDir(), "bg.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, src); err != nil {
		t.Fatal(err)
	}
	f.Close()

	bg, err := LoadBackground(path, 64)
	if err != nil {
		t.Fatalf("LoadBackground: %v", err)
	}
	if b := bg.Bounds(); b.Dx() != 64 || b.Dy() != 64 {
		t.Fatalf("bounds = %v, want 64x64", b)
	}
	if c := bg.RGBAAt(32, 32); c.B < 200 {
		t.Errorf("center = %+v, want blue-ish source color", c)
	}
}

func TestLoadBackgroundMissing(t *testing.T) {
	if _, err := LoadBackground(filepath.Join(t.TempDir(), "nope.png"), 64); err == nil {
		t.Error("want error for missing background")
	}
}
