package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/themegen/internal/export"
)

var showCmd = &cobra.Command{
	Use:     "show",
	Aliases: []string{"ls"},
	Short:   "Show the current theme",
	Long:    "Print every theme field with its RGB value and a color swatch, followed by any contrast warnings.",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			data, err := export.JSON(s.Colors())
			if err != nil {
				return err
			}
			_, err = out.Write(data)
			return err
		}

		snap := s.Snapshot()
		printTheme(out, snap.Colors)
		fmt.Fprintln(out)
		printWarnings(out, snap.Warnings)
		return nil
	},
}

func init() {
	showCmd.Flags().Bool("json", false, "Print the theme as JSON")
}
