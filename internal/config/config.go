package config

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Config holds all input, animation and render settings.
type Config struct {
	// Input and output
	TextFile   string `json:"text_file" yaml:"text_file"`
	OutputPath string `json:"output" yaml:"output"`

	// Spiral geometry, in world units
	InitialRadius float64 `json:"initial_radius" yaml:"initial_radius"`
	CoilSpacing   float64 `json:"coil_spacing" yaml:"coil_spacing"`
	CharSpacing   float64 `json:"char_spacing" yaml:"char_spacing"`

	// Animation timing
	FPS         int     `json:"fps" yaml:"fps"`
	DurationSec float64 `json:"duration_sec" yaml:"duration_sec"`

	// Anomaly position as a percentage of the text, 0-100.
	// Unset means the renderer asks for it interactively.
	AnomalyPct *float64 `json:"anomaly_pct" yaml:"anomaly_pct"`

	// Reveal slowdown around the anomaly
	SlowChars       float64 `json:"slow_chars" yaml:"slow_chars"`
	SlowDurationSec float64 `json:"slow_duration_sec" yaml:"slow_duration_sec"`

	// Bulge shape; a negative amplitude disables the bulge
	BulgeAmp   float64 `json:"bulge_amp" yaml:"bulge_amp"`
	BulgeSigma float64 `json:"bulge_sigma" yaml:"bulge_sigma"`

	// Canvas and typography
	CanvasSize      int     `json:"canvas_size" yaml:"canvas_size"`
	Margin          int     `json:"margin" yaml:"margin"`
	FontSize        float64 `json:"font_size" yaml:"font_size"`
	FontPath        string  `json:"font_path" yaml:"font_path"`
	TextColor       string  `json:"text_color" yaml:"text_color"`
	AnomalyColor    string  `json:"anomaly_color" yaml:"anomaly_color"`
	BackgroundColor string  `json:"background_color" yaml:"background_color"`
	BackgroundImage string  `json:"background_image" yaml:"background_image"`

	// Render settings
	Supersample int `json:"supersample" yaml:"supersample"`
	Workers     int `json:"workers" yaml:"workers"`
}

// Load reads a config file, JSON or YAML by extension, and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	TextFile    string
	Output      string
	AnomalyPct  float64
	AnomalySet  bool
	FPS         int
	DurationSec float64
	Supersample int
	Workers     int
}

// Resolve overlays CLI flags onto the config and fills remaining empty
// fields with defaults. Flag values win when set.
func (c *Config) Resolve(flags Flags) {
	if flags.TextFile != "" {
		c.TextFile = flags.TextFile
	}
	if flags.Output != "" {
		c.OutputPath = flags.Output
	}
	if flags.AnomalySet {
		pct := flags.AnomalyPct
		c.AnomalyPct = &pct
	}
	if flags.FPS > 0 {
		c.FPS = flags.FPS
	}
	if flags.DurationSec > 0 {
		c.DurationSec = flags.DurationSec
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.InitialRadius < 0 {
		c.InitialRadius = 0
	}
	if c.CoilSpacing <= 0 {
		c.CoilSpacing = 3
	}
	if c.CharSpacing <= 0 {
		c.CharSpacing = 1
	}
	if c.FPS <= 0 {
		c.FPS = 30
	}
	if c.DurationSec <= 0 {
		c.DurationSec = 5
	}
	if c.SlowChars <= 0 {
		c.SlowChars = 150
	}
	if c.SlowDurationSec <= 0 {
		c.SlowDurationSec = 1.5
	}
	if c.BulgeAmp == 0 {
		c.BulgeAmp = 0.4
	}
	if c.BulgeSigma <= 0 {
		c.BulgeSigma = 0.04
	}
	if c.CanvasSize <= 0 {
		c.CanvasSize = 800
	}
	if c.Margin <= 0 {
		c.Margin = 40
	}
	if c.FontSize <= 0 {
		c.FontSize = 18
	}
	if c.TextColor == "" {
		c.TextColor = "#000000"
	}
	if c.AnomalyColor == "" {
		c.AnomalyColor = "#ff0000"
	}
	if c.BackgroundColor == "" {
		c.BackgroundColor = "#ffffff"
	}
	if c.Supersample <= 0 {
		c.Supersample = 1
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Palette holds the parsed render colors.
type Palette struct {
	Text       color.NRGBA
	Anomaly    color.NRGBA
	Background color.NRGBA
}

// Palette parses the configured hex colors.
func (c Config) Palette() (Palette, error) {
	var p Palette
	var err error
	if p.Text, err = parseHex(c.TextColor); err != nil {
		return Palette{}, fmt.Errorf("config: text color %q: %w", c.TextColor, err)
	}
	if p.Anomaly, err = parseHex(c.AnomalyColor); err != nil {
		return Palette{}, fmt.Errorf("config: anomaly color %q: %w", c.AnomalyColor, err)
	}
	if p.Background, err = parseHex(c.BackgroundColor); err != nil {
		return Palette{}, fmt.Errorf("config: background color %q: %w", c.BackgroundColor, err)
	}
	return p, nil
}

func parseHex(s string) (color.NRGBA, error) {
	h, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, err
	}
	r, g, b := h.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}
