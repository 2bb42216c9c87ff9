package tui

import (
	"math"
	"strings"
	"time"

	"github.com/muesli/termenv"

	"github.com/balkashynov/themegen/internal/color"
)

// ShimmerConfig holds configuration for the title shimmer
type ShimmerConfig struct {
	Enabled        bool    // ui.animations
	SpeedMs        int     // tick interval
	WidthRatio     float64 // highlight width relative to the text
	CycleMs        int     // time for one sweep
	PauseBetweenMs int     // pause between sweeps
}

// DefaultShimmerConfig returns default shimmer configuration
func DefaultShimmerConfig() ShimmerConfig {
	return ShimmerConfig{
		Enabled:        true,
		SpeedMs:        100,
		WidthRatio:     0.25,
		CycleMs:        1800,
		PauseBetweenMs: 500,
	}
}

// ShimmerState holds the current state of a shimmer effect
type ShimmerState struct {
	Config ShimmerConfig
	Center float64

	profile    termenv.Profile
	lastUpdate time.Time
	pausedAt   time.Time
	paused     bool
}

// NewShimmerState creates a shimmer that renders for the terminal's
// color profile.
func NewShimmerState(config ShimmerConfig) *ShimmerState {
	return newShimmerState(config, termenv.ColorProfile())
}

func newShimmerState(config ShimmerConfig, profile termenv.Profile) *ShimmerState {
	return &ShimmerState{
		Config:     config,
		profile:    profile,
		lastUpdate: time.Now(),
	}
}

// Active reports whether the shimmer animates. Monochrome terminals
// never animate.
func (s *ShimmerState) Active() bool {
	return s.Config.Enabled && s.profile != termenv.Ascii
}

// TickInterval returns the interval for tea.Tick commands
func (s *ShimmerState) TickInterval() time.Duration {
	return time.Duration(s.Config.SpeedMs) * time.Millisecond
}

// Advance moves the highlight one step along text of length n.
func (s *ShimmerState) Advance(n int, now time.Time) {
	if !s.Active() || n <= 0 {
		return
	}
	if now.Sub(s.lastUpdate) < s.TickInterval() {
		return
	}
	s.lastUpdate = now

	if s.paused {
		if now.Sub(s.pausedAt) >= time.Duration(s.Config.PauseBetweenMs)*time.Millisecond {
			s.paused = false
			s.Center = -float64(n) * s.Config.WidthRatio
		}
		return
	}

	// the sweep starts before the text and ends after it
	ticks := float64(s.Config.CycleMs) / float64(s.Config.SpeedMs)
	distance := float64(n) * (1 + 2*s.Config.WidthRatio)
	s.Center += distance / ticks

	end := float64(n) * (1 + s.Config.WidthRatio)
	if s.Center >= end {
		s.Center = end
		s.paused = true
		s.pausedAt = now
	}
}

// Render draws text with the highlight at its current position.
func (s *ShimmerState) Render(text string) string {
	if text == "" {
		return ""
	}
	if !s.Active() {
		return s.profile.String(text).Foreground(s.profile.Color(ColorAccentBright)).Bold().String()
	}

	runes := []rune(text)
	sigma := math.Max(1, s.Config.WidthRatio*float64(len(runes))/2)

	var b strings.Builder
	for i, r := range runes {
		dx := float64(i) - s.Center
		w := math.Exp(-(dx * dx) / (2 * sigma * sigma))
		b.WriteString(s.profile.String(string(r)).Foreground(s.profile.Color(blend(w))).Bold().String())
	}
	return b.String()
}

// blend mixes the label grey (#B1B8C7) toward a light violet (#EAE6FF).
func blend(w float64) string {
	w = math.Min(1, math.Max(0, w))
	mix := func(a, b uint8) uint8 { return uint8(float64(a)*(1-w) + float64(b)*w) }
	return color.Format(color.RGB{R: mix(177, 234), G: mix(184, 230), B: mix(199, 255)})
}
