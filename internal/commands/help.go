package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help",
	Short: "Show comprehensive help for themegen",
	Long:  `Display detailed help for all themegen commands and flags.`,
	Run: func(cmd *cobra.Command, args []string) {
		showCustomHelp()
	},
}

func showCustomHelp() {
	fmt.Print(`
████████╗██╗  ██╗███████╗███╗   ███╗███████╗ ██████╗ ███████╗███╗   ██╗
╚══██╔══╝██║  ██║██╔════╝████╗ ████║██╔════╝██╔════╝ ██╔════╝████╗  ██║
   ██║   ███████║█████╗  ██╔████╔██║█████╗  ██║  ███╗█████╗  ██╔██╗ ██║
   ██║   ██╔══██║██╔══╝  ██║╚██╔╝██║██╔══╝  ██║   ██║██╔══╝  ██║╚██╗██║
   ██║   ██║  ██║███████╗██║ ╚═╝ ██║███████╗╚██████╔╝███████╗██║ ╚████║
   ╚═╝   ╚═╝  ╚═╝╚══════╝╚═╝     ╚═╝╚══════╝ ╚═════╝ ╚══════╝╚═╝  ╚═══╝

themegen - mpro5 Saturn theme editor

COMMANDS:

  edit                    Open the interactive editor (default)
    ↑/↓                   Select a field
    enter                 Apply the typed color
    tab, shift+tab        Switch preview screen
    ctrl+s                Save
    ctrl+r                Reset to default theme
    esc                   Quit (asks to save unsaved changes)

  show                    Print the theme with swatches and warnings
    --json                JSON output

  set <field> <hex>       Set a single field
  set field=hex ...       Set several fields with smart syntax
    Smart syntax:
      field=hex     Set one field (primaryShade=#aa0033)
      family:hex    Set a base and derive the rest (secondary:#336699)

  base <family> <hex>     Set a family base color and derive contrast,
                          shade and tint

  audit                   Check contrast ratios, exit 1 on warnings
  contrast <hex> <hex>    Print the contrast ratio of two colors
  derive <hex>            Preview derived colors without saving

  export                  Write the theme to custom-theme.json
    -o, --output          Output file
    --stdout              Print instead of writing a file
    --copy                Copy the JSON to the clipboard

  email                   Prepare an email to the mpro5 team
    --name                Your name
    --org                 Your organisation
    --copy                Copy the mailto link

  reset                   Restore the default theme
  version                 Print version information
  help                    Show this help

GLOBAL FLAGS:

  --db <path>             Theme database (default ~/.themegen/themegen.db)
  --threshold <ratio>     Minimum contrast ratio (default 4.5)
  --debug                 Write ~/.themegen/debug.log
  --log-level <level>     Debug log level

`)
}
