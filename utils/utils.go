package utils

import "golang.org/x/exp/constraints"

// Map scales x from [inMin,inMax] onto [outMin,outMax] the way Arduino's map()
// does: integer math, truncating toward zero, no clamping. Either range may be
// inverted.
func Map[T constraints.Signed](x, inMin, inMax, outMin, outMax T) T {
	if inMax == inMin {
		return outMin
	}
	return T(int64(x-inMin)*int64(outMax-outMin)/int64(inMax-inMin)) + outMin
}

func Limit[T constraints.Integer](x, min, max T) T {
	switch {
	case x > max:
		return max
	case x < min:
		return min
	}
	return x
}

// Elapsed returns now-then on a wrapping millisecond counter.
func Elapsed(now, then uint32) uint32 {
	return now - then
}
