package textinput

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// AskAnomalyPct prompts on out for the anomaly position and reads one line
// from in.
func AskAnomalyPct(in io.Reader, out io.Writer) float64 {
	fmt.Fprint(out, "Anomaly percentage (0-100): ")
	line, _ := bufio.NewReader(in).ReadString('\n')
	return ParseAnomalyPct(line)
}

// ParseAnomalyPct parses a percentage. Input that does not parse falls
// back to 70; the result is clamped to [0, 100].
func ParseAnomalyPct(s string) float64 {
	pct, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(pct) {
		pct = 70
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return pct
}
