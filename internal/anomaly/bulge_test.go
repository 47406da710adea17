package anomaly

import (
	"math"
	"reflect"
	"testing"
)

func TestBulgeDeltasNonDecreasing(t *testing.T) {
	for _, frac := range []float64{0, 0.3, 0.5, 0.97, 1} {
		deltas := BulgeDeltas(200, frac, 0.4, 0.04)
		if len(deltas) != 200 {
			t.Fatalf("frac=%.2f: got %d deltas, want 200", frac, len(deltas))
		}
		for i := 1; i < len(deltas); i++ {
			if deltas[i] < deltas[i-1] {
				t.Fatalf("frac=%.2f: delta decreased at %d: %f -> %f", frac, i, deltas[i-1], deltas[i])
			}
		}
	}
}

func TestBulgeDeltasZeroBeforeAnomaly(t *testing.T) {
	const n = 200
	const frac = 0.5
	deltas := BulgeDeltas(n, frac, 0.4, 0.04)
	for i := 0; i < n; i++ {
		tChar := float64(i) / float64(n-1)
		if tChar <= frac && deltas[i] != 0 {
			t.Errorf("delta[%d] = %f before anomaly, want 0", i, deltas[i])
		}
	}
}

func TestBulgeDeltasBoundedByAmp(t *testing.T) {
	const amp = 0.4
	deltas := BulgeDeltas(300, 0.2, amp, 0.04)
	for i, d := range deltas {
		if d < 0 || d > amp {
			t.Errorf("delta[%d] = %f outside [0, %f]", i, d, amp)
		}
	}
	// Far past the anomaly the half-Gaussian saturates.
	if last := deltas[299]; last < amp*0.99 {
		t.Errorf("tail delta %f, want near %f", last, amp)
	}
}

func TestBulgeDeltasAnomalyAtStart(t *testing.T) {
	deltas := BulgeDeltas(100, 0, 0.4, 0.04)
	if deltas[0] != 0 {
		t.Errorf("delta[0] = %f, want 0", deltas[0])
	}
	if deltas[1] <= 0 {
		t.Errorf("delta[1] = %f, want > 0", deltas[1])
	}
}

func TestBulgeDeltasAnomalyAtEnd(t *testing.T) {
	deltas := BulgeDeltas(100, 1, 0.4, 0.04)
	for i, d := range deltas {
		if d != 0 {
			t.Errorf("delta[%d] = %f, want 0 when anomaly sits at the end", i, d)
		}
	}
}

func TestBulgeDeltasTinyText(t *testing.T) {
	if got := BulgeDeltas(0, 0.5, 0.4, 0.04); len(got) != 0 {
		t.Errorf("N=0: got %v, want empty", got)
	}
	got := BulgeDeltas(1, 0.5, 0.4, 0.04)
	if len(got) != 1 || got[0] != 0 {
		t.Errorf("N=1: got %v, want [0]", got)
	}
}

func TestBulgeDeltasZeroSigma(t *testing.T) {
	deltas := BulgeDeltas(50, 0.5, 0.4, 0)
	for i, d := range deltas {
		if math.IsNaN(d) || math.IsInf(d, 0) {
			t.Fatalf("delta[%d] = %f with sigma 0", i, d)
		}
		if i > 0 && deltas[i] < deltas[i-1] {
			t.Fatalf("delta decreased at %d with sigma 0", i)
		}
	}
}

func TestBulgeDeltasDeterministic(t *testing.T) {
	a := BulgeDeltas(128, 0.7, 0.4, 0.04)
	b := BulgeDeltas(128, 0.7, 0.4, 0.04)
	if !reflect.DeepEqual(a, b) {
		t.Error("repeated calls disagree")
	}
}
