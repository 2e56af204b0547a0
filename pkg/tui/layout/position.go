// ABOUTME: Resolution-independent coordinates: ratio or absolute offsets, optionally mirrored
// ABOUTME: Resolve turns a Position plus a terminal extent into a signed cell offset

package layout

import "math"

// Position describes one axis of a placement.
//
// A zero Denominator selects absolute mode, where Absolute is the offset.
// Any other Denominator selects ratio mode: Numerator/Denominator of the
// extent. Flip measures from the bottom/right edge instead of top/left.
type Position struct {
	Numerator   int16  `yaml:"num"`
	Denominator uint16 `yaml:"den"`
	Absolute    int16  `yaml:"abs"`
	Flip        bool   `yaml:"flip"`
}

// Abs returns an absolute-mode Position.
func Abs(offset int16, flip bool) Position {
	return Position{Absolute: offset, Flip: flip}
}

// Ratio returns a ratio-mode Position. A zero den yields absolute 0.
func Ratio(num int16, den uint16, flip bool) Position {
	return Position{Numerator: num, Denominator: den, Flip: flip}
}

// IsAbsolute reports whether p is in absolute mode.
func (p Position) IsAbsolute() bool {
	return p.Denominator == 0
}

// Resolve converts p into a cell offset within extent.
//
// Results that do not fit in int16 saturate at math.MinInt16/math.MaxInt16.
func Resolve(p Position, extent uint16) int16 {
	e := int64(extent)
	if p.IsAbsolute() {
		if p.Flip {
			return saturate(e - int64(p.Absolute) - 1)
		}
		return p.Absolute
	}

	raw := math.Ceil(float64(extent) * float64(p.Numerator) / float64(p.Denominator))
	// |raw| <= 65535*32768, so the int64 conversion is exact.
	out := int64(saturate(int64(raw)))
	if p.Flip {
		return saturate(e - 1 - out)
	}
	return int16(out)
}

// Sub returns a-b saturated to the int16 range.
func Sub(a int16, b uint16) int16 {
	return saturate(int64(a) - int64(b))
}

// Add returns a+d saturated to the int16 range.
func Add(a int16, d int) int16 {
	return saturate(int64(a) + int64(d))
}

func saturate(v int64) int16 {
	switch {
	case v > math.MaxInt16:
		return math.MaxInt16
	case v < math.MinInt16:
		return math.MinInt16
	}
	return int16(v)
}
