// Package editor owns the theme being edited: it applies the update
// protocol, recomputes warnings after every change, persists through a
// Store and notifies subscribers.
package editor

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/rs/zerolog"

	"github.com/balkashynov/themegen/internal/audit"
	"github.com/balkashynov/themegen/internal/parser"
	"github.com/balkashynov/themegen/internal/theme"
)

// Store is the key-value persistence the session reads and writes.
type Store interface {
	Load(ctx context.Context) (theme.Colors, error)
	Save(ctx context.Context, c theme.Colors) error
	Reset(ctx context.Context) (theme.Colors, error)
}

// Snapshot is the theme together with the warnings computed from it.
type Snapshot struct {
	Colors   theme.Colors
	Warnings []audit.Warning
}

// Listener is called after every change with the new snapshot.
type Listener func(Snapshot)

// Option configures a Session.
type Option func(*Session)

// WithThreshold sets the minimum contrast ratio used for warnings.
func WithThreshold(threshold float64) Option {
	return func(s *Session) {
		if threshold > 0 {
			s.threshold = threshold
		}
	}
}

// WithLogger attaches a logger; the default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// Session is the single writer of a theme.
type Session struct {
	mu        sync.Mutex
	store     Store
	logger    zerolog.Logger
	threshold float64

	colors   theme.Colors
	warnings []audit.Warning
	dirty    bool

	listeners map[int]Listener
	nextID    int
}

// Open loads the stored theme and returns a session over it.
func Open(ctx context.Context, store Store, opts ...Option) (*Session, error) {
	if store == nil {
		return nil, errors.New("theme store is required")
	}

	s := &Session{
		store:     store,
		logger:    zerolog.Nop(),
		threshold: audit.DefaultThreshold,
		listeners: make(map[int]Listener),
	}
	for _, opt := range opts {
		opt(s)
	}

	colors, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}
	s.colors = colors
	s.warnings = audit.Audit(colors, s.threshold)

	s.logger.Debug().
		Int("warnings", len(s.warnings)).
		Float64("threshold", s.threshold).
		Msg("theme loaded")
	return s, nil
}

// Snapshot returns the current theme and warnings.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Colors returns the current theme.
func (s *Session) Colors() theme.Colors {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.colors
}

// Threshold returns the contrast ratio warnings are computed against.
func (s *Session) Threshold() float64 {
	return s.threshold
}

// Dirty reports whether there are changes not yet saved.
func (s *Session) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// SetRole overwrites one role without cascading.
func (s *Session) SetRole(f theme.Family, r theme.Role, value string) Snapshot {
	s.logger.Debug().Str("family", string(f)).Str("role", string(r)).Str("value", value).Msg("set role")
	return s.Update(func(c theme.Colors) theme.Colors {
		return c.Set(f, r, value)
	})
}

// SetBase sets a family base and derives its contrast, shade and tint.
func (s *Session) SetBase(f theme.Family, value string) Snapshot {
	s.logger.Debug().Str("family", string(f)).Str("value", value).Msg("cascade base")
	return s.Update(func(c theme.Colors) theme.Colors {
		return c.SetBase(f, value)
	})
}

// Input handles text typed into a role's field. Only complete hex input is
// applied: base roles cascade, other roles are set directly. It reports
// whether the input was applied.
func (s *Session) Input(f theme.Family, r theme.Role, raw string) (Snapshot, bool) {
	value, err := parser.NormalizeHexInput(raw)
	if err != nil {
		return s.Snapshot(), false
	}
	if r == theme.Base {
		return s.SetBase(f, value), true
	}
	return s.SetRole(f, r, value), true
}

// Apply runs parsed assignments in order as one change.
func (s *Session) Apply(p parser.ParsedAssignments) Snapshot {
	return s.Update(p.Apply)
}

// Update replaces the theme with fn(current), recomputes warnings and
// notifies subscribers.
func (s *Session) Update(fn func(theme.Colors) theme.Colors) Snapshot {
	s.mu.Lock()
	next := fn(s.colors)
	if next != s.colors {
		s.dirty = true
	}
	s.colors = next
	s.warnings = audit.Audit(next, s.threshold)
	snap := s.snapshotLocked()
	listeners := s.listenersLocked()
	s.mu.Unlock()

	for _, l := range listeners {
		l(snap)
	}
	return snap
}

// Save persists the current theme.
func (s *Session) Save(ctx context.Context) error {
	s.mu.Lock()
	colors := s.colors
	s.mu.Unlock()

	if err := s.store.Save(ctx, colors); err != nil {
		s.logger.Error().Err(err).Msg("failed to save theme")
		return err
	}

	s.mu.Lock()
	if s.colors == colors {
		s.dirty = false
	}
	s.mu.Unlock()
	s.logger.Info().Msg("theme saved")
	return nil
}

// Reset restores the default theme in the store and in the session.
func (s *Session) Reset(ctx context.Context) (Snapshot, error) {
	colors, err := s.store.Reset(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to reset theme")
		return s.Snapshot(), err
	}

	snap := s.Update(func(theme.Colors) theme.Colors { return colors })
	s.mu.Lock()
	s.dirty = false
	s.mu.Unlock()
	s.logger.Info().Msg("theme reset to default")
	return snap, nil
}

// Subscribe registers l for change notifications and returns a function
// that removes it.
func (s *Session) Subscribe(l Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

func (s *Session) snapshotLocked() Snapshot {
	warnings := make([]audit.Warning, len(s.warnings))
	copy(warnings, s.warnings)
	return Snapshot{Colors: s.colors, Warnings: warnings}
}

func (s *Session) listenersLocked() []Listener {
	ids := make([]int, 0, len(s.listeners))
	for id := range s.listeners {
		ids = append(ids, id)
	}
	// notify in subscription order
	slices.Sort(ids)
	out := make([]Listener, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.listeners[id])
	}
	return out
}
