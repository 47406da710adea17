package encode

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
)

// WriteAnimation saves frames under path, choosing the container by
// extension: .gif writes an animated GIF, anything else an animated WebP.
func WriteAnimation(path string, frames []image.Image, durationMS int) error {
	if strings.EqualFold(filepath.Ext(path), ".gif") {
		return WriteGIF(path, frames, durationMS)
	}
	return WriteWebP(path, frames, durationMS)
}

// DumpFrames writes individual frames into dir as frame_NNNN files.
// format is "png" or "tga". every selects each every-th frame; 1 keeps all.
func DumpFrames(dir string, frames []image.Image, format string, every int) (int, error) {
	if every < 1 {
		every = 1
	}
	format = strings.ToLower(format)
	if format != "png" && format != "tga" {
		return 0, fmt.Errorf("encode: unknown dump format %q", format)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, fmt.Errorf("encode: create %s: %w", dir, err)
	}

	written := 0
	for i, frame := range frames {
		if i%every != 0 {
			continue
		}
		path := filepath.Join(dir, fmt.Sprintf("frame_%04d.%s", i, format))
		if err := writeStill(path, frame, format); err != nil {
			return written, err
		}
		written++
	}

	return written, nil
}

func writeStill(path string, frame image.Image, format string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("encode: create %s: %w", path, err)
	}
	defer f.Close()

	switch format {
	case "tga":
		err = tga.Encode(f, frame)
	default:
		err = png.Encode(f, frame)
	}
	if err != nil {
		return fmt.Errorf("encode: write %s: %w", path, err)
	}

	return nil
}
