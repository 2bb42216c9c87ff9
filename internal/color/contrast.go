package color

import "math"

// SentinelRatio is returned by ContrastRatio when either color fails to
// parse. It sits below every useful threshold so bad input gets flagged.
const SentinelRatio = 1.0

// linearize converts an sRGB channel in [0,1] to linear light.
func linearize(c float64) float64 {
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// Luminance returns the relative luminance of c in [0,1].
func Luminance(c RGB) float64 {
	r := linearize(float64(c.R) / 255.0)
	g := linearize(float64(c.G) / 255.0)
	b := linearize(float64(c.B) / 255.0)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// RatioRGB returns the contrast ratio between two parsed colors.
// The result is at least 1 and independent of argument order.
func RatioRGB(a, b RGB) float64 {
	l1 := Luminance(a)
	l2 := Luminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// ContrastRatio parses both hex colors and returns their contrast ratio,
// or SentinelRatio if either does not parse.
func ContrastRatio(a, b string) float64 {
	ra, ok := Parse(a)
	if !ok {
		return SentinelRatio
	}
	rb, ok := Parse(b)
	if !ok {
		return SentinelRatio
	}
	return RatioRGB(ra, rb)
}
