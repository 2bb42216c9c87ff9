package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/themegen/internal/audit"
	"github.com/balkashynov/themegen/internal/color"
	"github.com/balkashynov/themegen/internal/config"
	"github.com/balkashynov/themegen/internal/parser"
)

var contrastCmd = &cobra.Command{
	Use:   "contrast <hex> <hex>",
	Short: "Print the contrast ratio of two colors",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := parser.NormalizeHexInput(args[0])
		if err != nil {
			return err
		}
		b, err := parser.NormalizeHexInput(args[1])
		if err != nil {
			return err
		}

		ratio := color.ContrastRatio(a, b)
		result := passStyle.Render("pass")
		if ratio < config.AuditThreshold() {
			result = failStyle.Render("fail")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s  %s  %s\n", swatch(a), swatch(b), audit.FormatRatio(ratio), result)
		return nil
	},
}

var deriveCmd = &cobra.Command{
	Use:   "derive <hex>",
	Short: "Preview the colors derived from a base without saving",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		base, err := parser.NormalizeHexInput(args[0])
		if err != nil {
			return err
		}

		rows := []struct{ name, hex string }{
			{"base", base},
			{"contrast", color.OptimalContrast(base)},
			{"shade", color.Shade(base)},
			{"tint", color.Tint(base)},
		}
		out := cmd.OutOrStdout()
		for _, row := range rows {
			fmt.Fprintf(out, "%-9s %-8s %s\n", row.name, row.hex, swatch(row.hex))
		}
		return nil
	},
}
