package animate

import (
	"fmt"
	"image"
	"sync"
	"sync/atomic"
	"time"

	"textspiral-renderer/internal/compose"
	"textspiral-renderer/internal/config"
	"textspiral-renderer/internal/postprocess"
	"textspiral-renderer/internal/raster"
)

// glyphPad is the transparent slack around each glyph patch, in pixels at
// base scale.
const glyphPad = 4

// Render rasterizes every frame of the layout with a worker pool and
// returns them in frame order. Rendering happens at Supersample times the
// configured canvas size and is filtered back down for output.
func Render(layout *compose.Layout, cfg config.Config, pal config.Palette) ([]image.Image, error) {
	super := cfg.Supersample
	if super < 1 {
		super = 1
	}
	renderSize := cfg.CanvasSize * super

	face, err := raster.LoadFace(cfg.FontPath, cfg.FontSize*float64(super))
	if err != nil {
		return nil, fmt.Errorf("animate: %w", err)
	}

	var bg *image.RGBA
	if cfg.BackgroundImage != "" {
		bg, err = raster.LoadBackground(cfg.BackgroundImage, renderSize)
		if err != nil {
			return nil, fmt.Errorf("animate: %w", err)
		}
	} else {
		bg = raster.SolidBackground(renderSize, pal.Background)
	}

	cache := raster.NewGlyphCache(face, glyphPad*super, pal.Text, pal.Anomaly)
	renderer := raster.NewRenderer(renderSize, cfg.Margin*super, bg, cache)

	total := layout.FrameCount()
	frames := make([]image.Image, total)
	var rendered atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := rendered.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f frames/sec\n", p, total, rate)
				}
			}
		}
	}()

	// Worker pool
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	frameChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range frameChan {
				img := renderer.Frame(layout.Frame(idx))
				if super > 1 {
					img = postprocess.Downsample(img, cfg.CanvasSize)
				}
				frames[idx] = img
				rendered.Add(1)
			}
		}()
	}

	// Send work
	for i := 0; i < total; i++ {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return frames, nil
}
