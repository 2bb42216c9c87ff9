package color

// Step is the per-channel offset used for shades and tints.
const Step = 30

// OptimalContrast picks black or white text for a background.
//
// This is a plain luminance threshold at 0.5, not a search for the highest
// ratio. Unparseable input yields white.
func OptimalContrast(base string) string {
	c, ok := Parse(base)
	if !ok {
		return Format(White)
	}
	if Luminance(c) > 0.5 {
		return Format(Black)
	}
	return Format(White)
}

// Adjust adds delta to every channel, clamping to [0,255].
// Unparseable input is returned as is.
func Adjust(base string, delta int) string {
	c, ok := Parse(base)
	if !ok {
		return base
	}
	// any offset past a full channel range saturates the same way
	if delta > 255 {
		delta = 255
	} else if delta < -255 {
		delta = -255
	}
	return Format(RGB{
		R: clamp(int(c.R) + delta),
		G: clamp(int(c.G) + delta),
		B: clamp(int(c.B) + delta),
	})
}

// Shade returns the darker variant of base.
func Shade(base string) string {
	return Adjust(base, -Step)
}

// Tint returns the lighter variant of base.
func Tint(base string) string {
	return Adjust(base, Step)
}

func clamp(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
