package commands

import (
	"github.com/spf13/cobra"

	"github.com/balkashynov/themegen/internal/config"
	"github.com/balkashynov/themegen/internal/tui"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the interactive theme editor",
	Long: `Open the theme editor with a live preview of the app.

Select a field with ↑/↓, type a hex color and press enter to apply it.
Base colors also update their contrast, shade and tint.

Keys:
  enter     Apply the typed color
  ctrl+s    Save
  ctrl+r    Reset to the default theme
  tab       Switch preview screen (shift+tab goes back)
  esc       Quit (asks to save unsaved changes)`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEditor(cmd)
	},
}

func runEditor(cmd *cobra.Command) error {
	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	return tui.RunEditor(cmd.Context(), s, tui.Options{
		Animations: config.GetBool(config.KeyUIAnimations),
		Logger:     logger,
	})
}
