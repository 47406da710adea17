package encode

import (
	"fmt"
	"image"
	"os"

	"github.com/HugoSmits86/nativewebp"
)

// WriteWebP saves frames as an animated WebP that loops forever.
// durationMS is the display time of every frame in milliseconds.
func WriteWebP(path string, frames []image.Image, durationMS int) error {
	if len(frames) == 0 {
		return fmt.Errorf("encode: no frames to write")
	}

	durations := make([]uint, len(frames))
	disposals := make([]uint, len(frames))
	for i := range durations {
		durations[i] = uint(durationMS)
	}

	anim := &nativewebp.Animation{
		Images:          frames,
		Durations:       durations,
		Disposals:       disposals,
		LoopCount:       0,
		BackgroundColor: 0xffffffff,
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("encode: create %s: %w", path, err)
	}
	defer f.Close()

	if err := nativewebp.EncodeAll(f, anim, nil); err != nil {
		return fmt.Errorf("encode: webp %s: %w", path, err)
	}

	return nil
}
