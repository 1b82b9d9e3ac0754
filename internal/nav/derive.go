package nav

import "math"

// Breakpoints shared by every derived value: motion is complete at 80% of
// the viewport width.
const (
	progressStart = 0.0
	progressEnd   = 0.8
)

// Progress is |offset| / width clamped to [0, 1]. A non-positive width
// yields 0.
func Progress(offset, width float64) float64 {
	if width <= 0 || math.IsNaN(offset) {
		return 0
	}
	return clamp(math.Abs(offset)/width, 0, 1)
}

// Interpolate maps x linearly from [in0, in1] onto [out0, out1] and clamps
// outside the input range.
func Interpolate(x, in0, in1, out0, out1 float64) float64 {
	if in1 == in0 || math.IsNaN(x) {
		return out0
	}
	t := clamp((x-in0)/(in1-in0), 0, 1)
	switch t {
	case 0:
		return out0
	case 1:
		return out1
	}
	return out0 + t*(out1-out0)
}

// CardOpacity fades the current card from 1.0 down to 0.3.
func CardOpacity(progress float64) float64 {
	return Interpolate(progress, progressStart, progressEnd, 1, 0.3)
}

// PreviewScale grows the preview card from 0.98 up to 1.0.
func PreviewScale(progress float64) float64 {
	return Interpolate(progress, progressStart, progressEnd, 0.98, 1)
}

// PreviewOpacity brings the preview card from 0.7 up to 1.0.
func PreviewOpacity(progress float64) float64 {
	return Interpolate(progress, progressStart, progressEnd, 0.7, 1)
}

// Frame is everything a renderer needs for one drawn frame.
type Frame struct {
	Index          int
	PreviewIndex   int
	Offset         float64
	Progress       float64
	CardOpacity    float64
	PreviewScale   float64
	PreviewOpacity float64
}

// Derive computes the frame for s at the given viewport width.
func Derive(s State, width float64) Frame {
	p := Progress(s.Offset, width)
	return Frame{
		Index:          s.Index,
		PreviewIndex:   s.PreviewIndex(),
		Offset:         s.Offset,
		Progress:       p,
		CardOpacity:    CardOpacity(p),
		PreviewScale:   PreviewScale(p),
		PreviewOpacity: PreviewOpacity(p),
	}
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}
