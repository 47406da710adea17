package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"textspiral-renderer/internal/animate"
	"textspiral-renderer/internal/compose"
	"textspiral-renderer/internal/config"
	"textspiral-renderer/internal/encode"
	"textspiral-renderer/internal/joblist"
	"textspiral-renderer/internal/textinput"
)

func runBatch(cmd *cobra.Command, args []string) error {
	base, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	jobs, err := joblist.Parse(jobsFile)
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		fmt.Println("No jobs to render.")
		return nil
	}

	fmt.Println(titleStyle.Render("Batch render"))
	fmt.Printf("Jobs: %d\n", len(jobs))
	fmt.Println(strings.Repeat("-", 60))

	start := time.Now()
	var failed []string
	for i, job := range jobs {
		out, err := renderJob(base, job)
		if err != nil {
			failed = append(failed, job.Text)
			fmt.Println(errorStyle.Render(fmt.Sprintf("  [%d/%d] %s: %v", i+1, len(jobs), job.Text, err)))
			continue
		}
		fmt.Printf("  [%d/%d] %s -> %s\n", i+1, len(jobs), job.Text, out)
	}

	fmt.Println(strings.Repeat("-", 60))
	fmt.Printf("Done in %.1fs: %d succeeded, %d failed\n",
		time.Since(start).Seconds(), len(jobs)-len(failed), len(failed))
	if len(failed) > 0 {
		for _, name := range failed {
			fmt.Println(subtleStyle.Render("  failed: " + name))
		}
		return fmt.Errorf("%d of %d jobs failed", len(failed), len(jobs))
	}

	return nil
}

// renderJob renders one batch entry. Jobs never prompt: a job without an
// anomaly position falls back to the configured or default value.
func renderJob(base config.Config, job joblist.JobDef) (string, error) {
	cfg := base
	cfg.TextFile = job.Text
	cfg.OutputPath = job.Output
	if job.Anomaly != nil {
		cfg.AnomalyPct = job.Anomaly
	}
	if job.FPS > 0 {
		cfg.FPS = job.FPS
	}
	if job.Duration > 0 {
		cfg.DurationSec = job.Duration
	}

	raw, err := textinput.ReadFile(cfg.TextFile)
	if err != nil {
		return "", err
	}
	text := textinput.Clean(raw)
	if text == "" {
		return "", fmt.Errorf("no text loaded from %s", cfg.TextFile)
	}

	pct := 70.0
	if cfg.AnomalyPct != nil {
		pct = clampPct(*cfg.AnomalyPct)
	}

	pal, err := cfg.Palette()
	if err != nil {
		return "", err
	}
	layout, err := compose.NewLayout(text, pct/100, cfg)
	if err != nil {
		return "", err
	}
	frames, err := animate.Render(layout, cfg, pal)
	if err != nil {
		return "", err
	}

	out := deriveOutput(cfg, cfg.TextFile)
	if err := encode.WriteAnimation(out, frames, 1000/cfg.FPS); err != nil {
		return "", err
	}

	return out, nil
}
