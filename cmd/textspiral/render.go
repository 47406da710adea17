package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"textspiral-renderer/internal/animate"
	"textspiral-renderer/internal/compose"
	"textspiral-renderer/internal/encode"
)

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	text, textPath, err := resolveText(cfg)
	if err != nil {
		return err
	}
	pct := resolveAnomaly(cfg)

	pal, err := cfg.Palette()
	if err != nil {
		return err
	}
	layout, err := compose.NewLayout(text, pct/100, cfg)
	if err != nil {
		return err
	}
	out := deriveOutput(cfg, textPath)

	fmt.Println(titleStyle.Render("Text Spiral Renderer"))
	fmt.Printf("Characters: %d\n", len(layout.Runes))
	fmt.Printf("Anomaly at: %.1f%%\n", pct)
	fmt.Printf("Frames: %d (%d fps, %.1fs)\n", layout.FrameCount(), cfg.FPS, cfg.DurationSec)
	fmt.Printf("Canvas: %dx%d px, supersample %dx, %d workers\n",
		cfg.CanvasSize, cfg.CanvasSize, cfg.Supersample, cfg.Workers)
	fmt.Printf("Output: %s\n", out)
	fmt.Println(strings.Repeat("-", 60))

	start := time.Now()
	frames, err := animate.Render(layout, cfg, pal)
	if err != nil {
		return err
	}
	if err := encode.WriteAnimation(out, frames, 1000/cfg.FPS); err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Println(strings.Repeat("-", 60))
	fmt.Printf("Rendered %d frames in %.1fs (%.1f frames/sec)\n",
		len(frames), elapsed.Seconds(), float64(len(frames))/elapsed.Seconds())
	abs, err := filepath.Abs(out)
	if err != nil {
		abs = out
	}
	fmt.Println(successStyle.Render("Saved spiral animation as " + abs))

	return nil
}
