package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/balkashynov/themegen/internal/config"
	"github.com/balkashynov/themegen/internal/db"
	"github.com/balkashynov/themegen/internal/editor"
	"github.com/balkashynov/themegen/internal/logging"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	debugMode bool
	logger    = zerolog.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "themegen",
	Short: "A terminal theme editor for the mpro5 Saturn app",
	Long: `themegen edits the primary and secondary brand colors of the mpro5 Saturn
mobile app. Pick a base color and themegen derives its contrast, shade and tint,
warns about pairs that are hard to read, previews the app screens and exports
the theme as JSON or a ready-to-send email.

Run without a subcommand to open the interactive editor.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = db.Close()
		logging.Close()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEditor(cmd)
	},
}

// setup loads configuration, applies flag overrides and starts logging.
func setup(cmd *cobra.Command, args []string) error {
	if err := config.Initialize(); err != nil {
		return err
	}

	overrides := map[string]any{}
	flags := cmd.Flags()
	if flags.Changed("db") {
		v, _ := flags.GetString("db")
		overrides[config.KeyDatabasePath] = v
	}
	if flags.Changed("threshold") {
		v, _ := flags.GetFloat64("threshold")
		overrides[config.KeyAuditThreshold] = v
	}
	if flags.Changed("log-level") {
		v, _ := flags.GetString("log-level")
		overrides[config.KeyLogLevel] = v
	}
	if err := config.ApplyOverrides(overrides); err != nil {
		return err
	}

	l, err := logging.Init(debugMode, config.GetString(config.KeyLogLevel))
	if err != nil {
		return fmt.Errorf("failed to start debug log: %w", err)
	}
	logger = l.With().Str("command", cmd.Name()).Logger()
	return nil
}

// openSession connects to the theme store and loads the current theme.
func openSession(ctx context.Context) (*editor.Session, error) {
	if err := db.Initialize(config.GetString(config.KeyDatabasePath)); err != nil {
		return nil, err
	}
	store := db.NewThemeStore(db.DB, config.GetString(config.KeyStoreKey))
	logger.Debug().Str("key", store.Key()).Msg("opening theme store")

	return editor.Open(ctx, store,
		editor.WithThreshold(config.AuditThreshold()),
		editor.WithLogger(logger),
	)
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Write a debug log to ~/.themegen/debug.log")
	rootCmd.PersistentFlags().String("db", "", "Path to the theme database")
	rootCmd.PersistentFlags().Float64("threshold", config.DefaultAuditThreshold, "Minimum contrast ratio before a warning")
	rootCmd.PersistentFlags().String("log-level", "", "Debug log level (debug, info, warn, error)")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(baseCmd)
	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(contrastCmd)
	rootCmd.AddCommand(deriveCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(emailCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.SetHelpCommand(helpCmd)
}
