package split

import (
	"math"
	"strconv"
	"strings"
)

// ProgressMarker identifies the elapsed-time line of ffmpeg -progress output.
// Despite the name ffmpeg reports this counter in microseconds.
const ProgressMarker = "out_time_ms"

// ParseProgress extracts the completed fraction of a step from a progress
// line. ok is false when the line carries no usable counter.
func ParseProgress(line string, duration float64) (fraction float64, ok bool) {
	idx := strings.Index(line, ProgressMarker)
	if idx < 0 {
		return 0, false
	}
	rest := line[idx+len(ProgressMarker):]
	eq := strings.IndexByte(rest, '=')
	if eq < 0 {
		return 0, false
	}
	micros, err := strconv.ParseInt(strings.TrimSpace(rest[eq+1:]), 10, 64)
	if err != nil {
		return 0, false
	}
	return Fraction(micros, duration), true
}

// Fraction is round(micros/1e6) / round(duration), clamped to [0, 1].
// Both roundings send halves to the even second. A duration rounding to zero yields 0.
func Fraction(micros int64, duration float64) float64 {
	d := math.RoundToEven(duration)
	if d <= 0 {
		return 0
	}
	secs := math.RoundToEven(float64(micros) / 1_000_000)
	return math.Min(1, math.Max(0, secs/d))
}
