package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/themegen/internal/audit"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Check theme contrast ratios",
	Long: `Check each family's base and contrast colors against the minimum contrast
ratio (4.5 by default, see --threshold). Exits with status 1 when any pair fails.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		colors := s.Colors()

		fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("%-10s %-10s %-10s %-7s %s", "FAMILY", "BASE", "CONTRAST", "RATIO", "RESULT")))
		for _, r := range audit.Check(colors, s.Threshold()) {
			result := passStyle.Render("pass")
			if !r.Pass {
				result = failStyle.Render("fail")
			}
			fmt.Fprintf(out, "%-10s %-10s %-10s %-7s %s\n", r.Family, r.Background, r.Foreground, audit.FormatRatio(r.Ratio), result)
		}
		fmt.Fprintln(out)

		warnings := s.Snapshot().Warnings
		printWarnings(out, warnings)
		if len(warnings) > 0 {
			return fmt.Errorf("%d contrast warning(s) below %s", len(warnings), audit.FormatRatio(s.Threshold()))
		}
		return nil
	},
}
