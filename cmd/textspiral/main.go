package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"textspiral-renderer/internal/config"
	"textspiral-renderer/internal/textinput"
)

var (
	configFile  string
	textFile    string
	outputPath  string
	anomalyPct  float64
	fps         int
	durationSec float64
	supersample int
	workers     int
	fontPath    string
	// dump settings
	dumpDir    string
	dumpFormat string
	dumpEvery  int
	// batch settings
	jobsFile string
	// probe settings
	probeChars int
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7aa2f7"))
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#9ece6a"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f7768e"))
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#565f89"))
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "textspiral",
		Short: "animated text spiral renderer",
		Long: "textspiral lays a text out along an Archimedean spiral and renders an\n" +
			"animated WebP or GIF of it being revealed over time, slowing down and\n" +
			"bulging outward around a chosen anomaly position.",
		RunE: runRender,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (json or yaml)")
	addRenderFlags(rootCmd)

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render the spiral animation",
		RunE:  runRender,
	}
	addRenderFlags(renderCmd)

	probeCmd := &cobra.Command{
		Use:   "probe",
		Short: "inspect the layout without rendering",
		RunE:  runProbe,
	}
	addRenderFlags(probeCmd)
	probeCmd.Flags().IntVar(&probeChars, "chars", 0, "probe a synthetic text of N characters instead of a file")

	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "write individual frames as still images",
		RunE:  runDump,
	}
	addRenderFlags(dumpCmd)
	dumpCmd.Flags().StringVar(&dumpDir, "dir", "frames", "output directory for stills")
	dumpCmd.Flags().StringVar(&dumpFormat, "format", "png", "still format: png or tga")
	dumpCmd.Flags().IntVar(&dumpEvery, "every", 1, "keep every N-th frame")

	batchCmd := &cobra.Command{
		Use:   "batch",
		Short: "render every job in a jobs XML file",
		RunE:  runBatch,
	}
	addRenderFlags(batchCmd)
	batchCmd.Flags().StringVar(&jobsFile, "jobs", "jobs.xml", "jobs XML file")

	rootCmd.AddCommand(renderCmd, probeCmd, dumpCmd, batchCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}

func addRenderFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&textFile, "text", "t", "", "input text file (default: ask with a file dialog)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output path; .gif selects GIF (default: <input>_spiral.webp)")
	cmd.Flags().Float64VarP(&anomalyPct, "anomaly", "a", 70, "anomaly position in percent of the text (default: ask)")
	cmd.Flags().IntVar(&fps, "fps", 0, "frames per second (default: 30)")
	cmd.Flags().Float64Var(&durationSec, "duration", 0, "animation length in seconds (default: 5)")
	cmd.Flags().IntVar(&supersample, "supersample", 0, "render scale for antialiasing (default: 1)")
	cmd.Flags().IntVar(&workers, "workers", 0, "worker goroutines (default: NumCPU)")
	cmd.Flags().StringVar(&fontPath, "font", "", "TrueType font file (default: embedded Go Regular)")
}

// loadConfig reads the optional config file and overlays CLI flags on it.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if configFile != "" {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return config.Config{}, err
		}
	}

	if fontPath != "" {
		cfg.FontPath = fontPath
	}
	cfg.Resolve(config.Flags{
		TextFile:    textFile,
		Output:      outputPath,
		AnomalyPct:  anomalyPct,
		AnomalySet:  cmd.Flags().Changed("anomaly"),
		FPS:         fps,
		DurationSec: durationSec,
		Supersample: supersample,
		Workers:     workers,
	})

	return cfg, nil
}

// resolveText returns the cleaned input text and the file it came from.
// Without a configured file it opens a file dialog, like dropping the tool
// onto a desktop.
func resolveText(cfg config.Config) (text, path string, err error) {
	path = cfg.TextFile
	if path == "" {
		path, err = textinput.PickFile()
		if errors.Is(err, textinput.ErrCanceled) {
			return "", "", errors.New("no file selected")
		}
		if err != nil {
			return "", "", err
		}
		fmt.Printf("Selected file: %s\n", path)
	}

	raw, err := textinput.ReadFile(path)
	if err != nil {
		return "", "", err
	}
	text = textinput.Clean(raw)
	if text == "" {
		return "", "", fmt.Errorf("no text loaded from %s", path)
	}

	return text, path, nil
}

// resolveAnomaly returns the anomaly percentage from config or flags,
// prompting on the terminal when neither set one.
func resolveAnomaly(cfg config.Config) float64 {
	if cfg.AnomalyPct != nil {
		return clampPct(*cfg.AnomalyPct)
	}
	return textinput.AskAnomalyPct(os.Stdin, os.Stdout)
}

func clampPct(pct float64) float64 {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// deriveOutput picks the output path: explicit config value, else the
// input file's name with a _spiral suffix.
func deriveOutput(cfg config.Config, textPath string) string {
	if cfg.OutputPath != "" {
		return cfg.OutputPath
	}
	if textPath == "" {
		return "spiral_growing.webp"
	}
	return strings.TrimSuffix(textPath, filepath.Ext(textPath)) + "_spiral.webp"
}
