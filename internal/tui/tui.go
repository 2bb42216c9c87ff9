package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/balkashynov/themegen/internal/editor"
)

// Options configures the editor TUI.
type Options struct {
	Animations bool
	Logger     zerolog.Logger
}

// RunEditor starts the interactive theme editor over s.
func RunEditor(ctx context.Context, s *editor.Session, opts Options) error {
	unsubscribe := s.Subscribe(func(snap editor.Snapshot) {
		opts.Logger.Debug().
			Str("primary", snap.Colors.Primary).
			Str("secondary", snap.Colors.Secondary).
			Int("warnings", len(snap.Warnings)).
			Msg("theme changed")
	})
	defer unsubscribe()

	model := NewEditorModel(ctx, s, opts)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := finalModel.(EditorModel); ok {
		switch {
		case s.Dirty():
			fmt.Println("❌ Unsaved changes discarded.")
		case m.saved:
			fmt.Println("✅ Theme saved.")
		}
	}
	return nil
}
