package commands

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/themegen/internal/audit"
	"github.com/balkashynov/themegen/internal/color"
	"github.com/balkashynov/themegen/internal/theme"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	passStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// swatch renders a small block painted with hex, or a placeholder when hex
// does not parse.
func swatch(hex string) string {
	if _, ok := color.Parse(hex); !ok {
		return "  ?  "
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("     ")
}

func printTheme(w io.Writer, c theme.Colors) {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%-22s %-10s %-13s %s", "FIELD", "HEX", "RGB", "")))
	for _, f := range theme.Families {
		for _, r := range theme.Roles {
			hex := c.Get(f, r)
			fmt.Fprintf(w, "%-22s %-10s %-13s %s\n", theme.Field(f, r), hex, c.RGB(f, r), swatch(hex))
		}
	}
}

func printWarnings(w io.Writer, warnings []audit.Warning) {
	if len(warnings) == 0 {
		fmt.Fprintln(w, passStyle.Render("✅ All color pairs meet the contrast threshold"))
		return
	}
	for _, warn := range warnings {
		fmt.Fprintln(w, warningStyle.Render("⚠️  "+warn.Message))
	}
}
