package compose

import (
	"errors"
	"math"

	"textspiral-renderer/internal/anomaly"
	"textspiral-renderer/internal/config"
	"textspiral-renderer/internal/spiral"
)

// ErrNoText reports that the cleaned input contained no characters.
var ErrNoText = errors.New("compose: text is empty")

// Characters within this many bulge sigmas of the anomaly are flagged for
// highlight coloring.
const anomalyBandSigmas = 2.2

// CharDraw is one character placed in world space for a single frame,
// with the bulge already applied to its coordinates.
type CharDraw struct {
	Char    rune
	X       float64
	Y       float64
	Angle   float64 // tangent angle in degrees, counterclockwise from +X
	Anomaly bool
}

// Frame is the world-space draw list for one animation frame. MaxRadius is
// the largest bulge-adjusted radius among visible characters; the
// rasterizer derives its zoom from it.
type Frame struct {
	Index     int
	Time      float64
	Revealed  float64
	Visible   int
	MaxRadius float64
	Chars     []CharDraw
}

// Layout holds everything about a text and anomaly position that does not
// change between frames: spiral placements, tangent angles, base radii and
// bulge deltas, indexed by character.
type Layout struct {
	Runes  []rune
	Points []spiral.Point
	Angles []float64
	Radii  []float64
	Deltas []float64

	frac   float64
	band   float64
	window anomaly.Window
	fps    int
	frames int
}

// NewLayout places every character of text on the spiral and precomputes
// the per-character reveal and bulge inputs. The text must already be
// cleaned; spaces keep their slots but are never drawn. anomalyFrac is
// clamped to [0, 1].
func NewLayout(text string, anomalyFrac float64, cfg config.Config) (*Layout, error) {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil, ErrNoText
	}

	if anomalyFrac < 0 {
		anomalyFrac = 0
	}
	if anomalyFrac > 1 {
		anomalyFrac = 1
	}

	points := spiral.Positions(len(runes), spiral.Params{
		InitialRadius: cfg.InitialRadius,
		CoilSpacing:   cfg.CoilSpacing,
		CharSpacing:   cfg.CharSpacing,
	})

	return &Layout{
		Runes:  runes,
		Points: points,
		Angles: spiral.TangentAngles(points),
		Radii:  spiral.Radii(points),
		Deltas: anomaly.BulgeDeltas(len(runes), anomalyFrac, cfg.BulgeAmp, cfg.BulgeSigma),
		frac:   anomalyFrac,
		band:   anomalyBandSigmas * cfg.BulgeSigma,
		window: anomaly.Window{
			SlowChars:    cfg.SlowChars,
			SlowDuration: cfg.SlowDurationSec,
			Duration:     cfg.DurationSec,
		},
		fps:    cfg.FPS,
		frames: int(math.Round(float64(cfg.FPS) * cfg.DurationSec)),
	}, nil
}

// FrameCount returns the total number of animation frames.
func (l *Layout) FrameCount() int {
	return l.frames
}

// AnomalyFrac returns the clamped anomaly position.
func (l *Layout) AnomalyFrac() float64 {
	return l.frac
}

// Window returns the reveal timing parameters.
func (l *Layout) Window() anomaly.Window {
	return l.window
}

// Frame composes the draw list for frame idx. The zoom reference MaxRadius
// covers every visible character, drawn or not, so spaces still hold their
// place in the spiral. Safe for concurrent use.
func (l *Layout) Frame(idx int) Frame {
	n := len(l.Runes)
	t := float64(idx) / float64(l.fps)
	revealed := anomaly.Revealed(t, n, l.frac, l.window)
	visible := anomaly.VisibleCount(revealed, n)

	maxR := 0.0
	for i := 0; i < visible; i++ {
		r0 := l.Radii[i]
		if r0 == 0 {
			r0 = 1e-6
		}
		if adj := r0 * (1 + l.Deltas[i]); adj > maxR {
			maxR = adj
		}
	}

	chars := make([]CharDraw, 0, visible)
	for i := 0; i < visible; i++ {
		ch := l.Runes[i]
		if ch == ' ' {
			continue
		}

		tChar := 0.0
		if n > 1 {
			tChar = float64(i) / float64(n-1)
		}
		delta := l.Deltas[i]

		chars = append(chars, CharDraw{
			Char:    ch,
			X:       l.Points[i].X * (1 + delta),
			Y:       l.Points[i].Y * (1 + delta),
			Angle:   l.Angles[i],
			Anomaly: math.Abs(tChar-l.frac) <= l.band,
		})
	}

	return Frame{
		Index:     idx,
		Time:      t,
		Revealed:  revealed,
		Visible:   visible,
		MaxRadius: maxR,
		Chars:     chars,
	}
}
