// Package audit checks each theme family's base/contrast pair against a
// minimum contrast ratio and reports the failures as warnings.
package audit

import (
	"fmt"
	"math"

	"github.com/balkashynov/themegen/internal/color"
	"github.com/balkashynov/themegen/internal/theme"
)

// DefaultThreshold is the WCAG AA minimum for normal text.
const DefaultThreshold = 4.5

// Result is the outcome of checking one family.
type Result struct {
	Family     theme.Family
	Background string
	Foreground string
	Ratio      float64
	Pass       bool
}

// Warning describes a family whose pair falls below the threshold.
type Warning struct {
	Family  theme.Family
	Ratio   float64
	Message string
}

func (w Warning) String() string {
	return w.Message
}

// Check computes one Result per family, primary first. Pairs that do not
// parse get color.SentinelRatio and therefore fail any threshold above 1.
func Check(c theme.Colors, threshold float64) []Result {
	results := make([]Result, 0, len(theme.Families))
	for _, f := range theme.Families {
		bg := c.Get(f, theme.Base)
		fg := c.Get(f, theme.Contrast)
		ratio := color.ContrastRatio(bg, fg)
		results = append(results, Result{
			Family:     f,
			Background: bg,
			Foreground: fg,
			Ratio:      ratio,
			Pass:       !(ratio < threshold),
		})
	}
	return results
}

// Audit returns a fresh list of warnings for c, primary before secondary.
// An empty list means every pair meets threshold.
func Audit(c theme.Colors, threshold float64) []Warning {
	warnings := []Warning{}
	for _, r := range Check(c, threshold) {
		if r.Pass {
			continue
		}
		warnings = append(warnings, Warning{
			Family:  r.Family,
			Ratio:   r.Ratio,
			Message: message(r.Family, r.Ratio),
		})
	}
	return warnings
}

func message(f theme.Family, ratio float64) string {
	name := f.Title()
	return fmt.Sprintf("%s/%s Contrast ratio (%s) may be difficult for those with visual impairment",
		name, name, FormatRatio(ratio))
}

// FormatRatio renders a ratio with two decimals, rounding halves away
// from zero.
func FormatRatio(ratio float64) string {
	return fmt.Sprintf("%.2f", math.Round(ratio*100)/100)
}
