package raster

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// LoadFace opens the TrueType font at path at the given pixel size. An
// empty path selects the embedded Go Regular face; a path that cannot be
// read or parsed falls back to Go Regular after printing a warning.
func LoadFace(path string, size float64) (font.Face, error) {
	data := goregular.TTF
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			fmt.Printf("warning: could not read font %s, using Go Regular\n", path)
		} else {
			data = raw
		}
	}

	fnt, err := opentype.Parse(data)
	if err != nil {
		if path == "" {
			return nil, fmt.Errorf("raster: parse font: %w", err)
		}
		fmt.Printf("warning: could not parse font %s, using Go Regular\n", path)
		if fnt, err = opentype.Parse(goregular.TTF); err != nil {
			return nil, fmt.Errorf("raster: parse font: %w", err)
		}
	}

	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("raster: build face: %w", err)
	}

	return face, nil
}
