package main

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"textspiral-renderer/internal/anomaly"
	"textspiral-renderer/internal/compose"
)

// runProbe prints the derived layout numbers and terminal plots of the
// reveal curve and the bulge profile, without rendering a single pixel.
func runProbe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	var text string
	if probeChars > 0 {
		text = strings.Repeat("x", probeChars)
	} else {
		text, _, err = resolveText(cfg)
		if err != nil {
			return err
		}
	}
	pct := resolveAnomaly(cfg)

	layout, err := compose.NewLayout(text, pct/100, cfg)
	if err != nil {
		return err
	}

	n := len(layout.Runes)
	anomalyIdx := 0
	if n > 1 {
		anomalyIdx = int(layout.AnomalyFrac() * float64(n-1))
	}

	fmt.Println(titleStyle.Render("Layout probe"))
	fmt.Printf("Characters: %d\n", n)
	fmt.Printf("Frames: %d (%d fps, %.1fs)\n", layout.FrameCount(), cfg.FPS, cfg.DurationSec)
	fmt.Printf("Anomaly: %.1f%% (character %d)\n", pct, anomalyIdx)
	fmt.Printf("Spiral radius: %.2f .. %.2f world units\n", layout.Radii[0], layout.Radii[n-1])

	win := layout.Window()
	reveal := make([]float64, 0, 120)
	for i := 0; i < 120; i++ {
		t := win.Duration * float64(i) / 119
		reveal = append(reveal, anomaly.Revealed(t, n, layout.AnomalyFrac(), win))
	}
	fmt.Println()
	fmt.Println(asciigraph.Plot(reveal,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("characters revealed over time")))

	fmt.Println()
	fmt.Println(asciigraph.Plot(layout.Deltas,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("bulge delta by character index")))

	fmt.Println()
	fmt.Println(asciigraph.Plot(layout.Radii,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("spiral radius by character index")))
	fmt.Println()
	fmt.Println(subtleStyle.Render("Run the render command to produce the animation."))

	return nil
}
