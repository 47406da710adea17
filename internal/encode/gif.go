package encode

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"os"
)

// WriteGIF saves frames as an animated GIF that loops forever. Frames are
// quantized to the Plan9 palette with Floyd-Steinberg dithering. durationMS
// is rounded down to the GIF's centisecond resolution.
func WriteGIF(path string, frames []image.Image, durationMS int) error {
	if len(frames) == 0 {
		return fmt.Errorf("encode: no frames to write")
	}

	delay := durationMS / 10
	out := &gif.GIF{LoopCount: 0}
	for _, frame := range frames {
		p := image.NewPaletted(frame.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(p, frame.Bounds(), frame, image.Point{})
		out.Image = append(out.Image, p)
		out.Delay = append(out.Delay, delay)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("encode: create %s: %w", path, err)
	}
	defer f.Close()

	if err := gif.EncodeAll(f, out); err != nil {
		return fmt.Errorf("encode: gif %s: %w", path, err)
	}

	return nil
}
