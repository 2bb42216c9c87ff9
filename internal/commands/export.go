package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/themegen/internal/config"
	"github.com/balkashynov/themegen/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the theme as a JSON file",
	Long: `Write the current theme to a JSON file (custom-theme.json by default).

Examples:
  themegen export
  themegen export -o brand/theme.json
  themegen export --stdout
  themegen export --copy`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		colors := s.Colors()
		out := cmd.OutOrStdout()

		toStdout, _ := cmd.Flags().GetBool("stdout")
		copyJSON, _ := cmd.Flags().GetBool("copy")

		data, err := export.JSON(colors)
		if err != nil {
			return err
		}
		if copyJSON {
			if err := export.CopyToClipboard(string(data)); err != nil {
				return err
			}
			fmt.Fprintln(out, "📋 Theme JSON copied to clipboard")
		}
		if toStdout {
			_, err = out.Write(data)
			return err
		}
		if copyJSON && !cmd.Flags().Changed("output") {
			return nil
		}

		path, _ := cmd.Flags().GetString("output")
		if path == "" {
			path = config.GetString(config.KeyExportPath)
		}
		if err := export.WriteFile(path, colors); err != nil {
			return err
		}
		logger.Info().Str("path", path).Msg("theme exported")
		fmt.Fprintf(out, "✅ Theme exported to %s\n", path)
		return nil
	},
}

var emailCmd = &cobra.Command{
	Use:   "email",
	Short: "Prepare an email to discuss the theme",
	Long: `Print a prefilled email to the mpro5 team together with a mailto link that
opens it in your mail client.

Example:
  themegen email --name "Ada Lovelace" --org "Acme"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		org, _ := cmd.Flags().GetString("org")
		contact := export.Contact{Name: name, Organization: org}
		recipient := config.GetString(config.KeyContactRecipient)
		link := contact.MailtoURL(recipient)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "To:      %s\n", recipient)
		fmt.Fprintf(out, "Subject: %s\n\n", export.Subject)
		fmt.Fprintln(out, contact.Body())
		fmt.Fprintf(out, "\n%s\n", link)

		if copyLink, _ := cmd.Flags().GetBool("copy"); copyLink {
			if err := export.CopyToClipboard(link); err != nil {
				return err
			}
			fmt.Fprintln(out, "📋 Link copied to clipboard")
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "Output file (default from export.path)")
	exportCmd.Flags().Bool("stdout", false, "Print the JSON instead of writing a file")
	exportCmd.Flags().Bool("copy", false, "Copy the JSON to the clipboard")

	emailCmd.Flags().String("name", "", "Your name")
	emailCmd.Flags().String("org", "", "Your organisation")
	emailCmd.Flags().Bool("copy", false, "Copy the mailto link to the clipboard")
	_ = emailCmd.MarkFlagRequired("name")
	_ = emailCmd.MarkFlagRequired("org")
}
