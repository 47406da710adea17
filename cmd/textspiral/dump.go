package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"textspiral-renderer/internal/animate"
	"textspiral-renderer/internal/compose"
	"textspiral-renderer/internal/encode"
)

func runDump(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	text, _, err := resolveText(cfg)
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

	fmt.Println(titleStyle.Render("Frame dump"))
	fmt.Printf("Characters: %d, frames: %d, every %d-th as %s\n",
		len(layout.Runes), layout.FrameCount(), dumpEvery, dumpFormat)
	fmt.Println(strings.Repeat("-", 60))

	start := time.Now()
	frames, err := animate.Render(layout, cfg, pal)
	if err != nil {
		return err
	}
	written, err := encode.DumpFrames(dumpDir, frames, dumpFormat, dumpEvery)
	if err != nil {
		return err
	}

	fmt.Println(strings.Repeat("-", 60))
	fmt.Printf("Wrote %d stills to %s in %.1fs\n", written, dumpDir, time.Since(start).Seconds())

	return nil
}
