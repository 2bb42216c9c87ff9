package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	appErrors "github.com/balkashynov/themegen/internal/errors"
	"github.com/balkashynov/themegen/internal/parser"
	"github.com/balkashynov/themegen/internal/theme"
)

var setCmd = &cobra.Command{
	Use:   "set <field> <hex> | set field=hex [family:hex ...]",
	Short: "Set theme fields",
	Long: `Set one or more theme fields and save the theme.

Smart syntax:
  field=hex     - set one field only (primary, primaryContrast, secondaryTint, ...)
  family:hex    - set a family base and derive its contrast, shade and tint

Examples:
  themegen set primaryShade '#aa0033'
  themegen set primaryTint=ff5577 secondary:#336699

Nothing is saved if any assignment is invalid.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := strings.Join(args, " ")
		if len(args) == 2 && !strings.ContainsAny(args[0], "=:") {
			input = args[0] + "=" + args[1]
		}

		parsed := parser.ParseAssignments(input)
		if len(parsed.Errors) > 0 {
			return appErrors.New(appErrors.CodeInvalidColor, strings.Join(parsed.Errors, "; "), nil)
		}
		if len(parsed.Assignments) == 0 {
			return fmt.Errorf("nothing to set")
		}

		s, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		snap := s.Apply(parsed)
		if err := s.Save(cmd.Context()); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, a := range parsed.Assignments {
			if a.Cascade {
				fmt.Fprintf(out, "✅ %s set to %s (contrast %s, shade %s, tint %s)\n",
					a.Family, a.Value,
					snap.Colors.Get(a.Family, theme.Contrast),
					snap.Colors.Get(a.Family, theme.Shade),
					snap.Colors.Get(a.Family, theme.Tint))
				continue
			}
			fmt.Fprintf(out, "✅ %s set to %s\n", theme.Field(a.Family, a.Role), a.Value)
		}
		printWarnings(out, snap.Warnings)
		return nil
	},
}

var baseCmd = &cobra.Command{
	Use:   "base <primary|secondary> <hex>",
	Short: "Set a family base color and derive the rest",
	Long: `Set the base color of a family. Its contrast color, shade and tint are
recalculated from the new base and the theme is saved.

Example:
  themegen base primary '#ed174c'`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		family, err := theme.ParseFamily(args[0])
		if err != nil {
			return err
		}
		value, err := parser.NormalizeHexInput(args[1])
		if err != nil {
			return err
		}

		s, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		snap := s.SetBase(family, value)
		if err := s.Save(cmd.Context()); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "✅ %s base set to %s\n", family.Title(), value)
		for _, r := range theme.Roles {
			hex := snap.Colors.Get(family, r)
			fmt.Fprintf(out, "  %-9s %-8s %s\n", r, hex, swatch(hex))
		}
		printWarnings(out, snap.Warnings)
		return nil
	},
}
