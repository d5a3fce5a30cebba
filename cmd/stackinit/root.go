package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/stackinit/internal/adapters/logging"
	"github.com/felixgeelhaar/stackinit/internal/config"
	"github.com/felixgeelhaar/stackinit/internal/ports"
	"github.com/felixgeelhaar/stackinit/internal/ui"
)

var (
	// Global flags
	cfgFile   string
	verbose   bool
	logFormat string
	noColor   bool
	logTimes  bool
)

var rootCmd = &cobra.Command{
	Use:   "stackinit",
	Short: "Scaffold an Express + React TypeScript project",
	Long: `Stackinit creates a two-part web project in the current directory:

  backend/   Express server in TypeScript (ts-node, nodemon)
  frontend/  Vite React-TS app with Tailwind CSS

Both parts are generated by running npm, so node and npm must be on PATH.
Run 'stackinit doctor' to check them first.`,
	Args:          cobra.NoArgs,
	RunE:          runSetup,
	SilenceErrors: true, // We handle error formatting ourselves
	SilenceUsage:  true, // Don't show usage on error
}

// Execute runs the root command, cancelling on SIGINT or SIGTERM.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, errReported) {
		printError(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (.yaml, .yml, or .toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (text, json)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&logTimes, "log-timestamps", false, "prefix log entries with a timestamp")

	registerFlagCompletions()

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(doctorCmd)
}

// errReported marks failures whose details were already shown to the user.
var errReported = errors.New("reported")

type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

func (e *reportedError) Is(target error) bool { return target == errReported }

// session bundles what every command needs at runtime.
type session struct {
	settings config.Settings
	logger   ports.Logger
	console  *ui.Console
	runID    string
}

// newSession resolves settings from the config file, environment, and
// flags, then builds the logger and console for cmd.
func newSession(cmd *cobra.Command) (*session, error) {
	overrides := config.Overrides{LogFormat: logFormat}
	if verbose {
		overrides.LogLevel = "debug"
	}
	if cmd.Flags().Changed("no-color") {
		overrides.NoColor = &noColor
	}
	if cmd.Flags().Changed("log-timestamps") {
		overrides.LogTimestamps = &logTimes
	}

	settings, err := config.Load(cfgFile, os.LookupEnv, overrides)
	if err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	logger := logging.NewConsoleLogger(
		logging.WithOutput(cmd.ErrOrStderr()),
		logging.WithLevel(settings.Level()),
		logging.WithJSONFormat(settings.JSON()),
		logging.WithLevelLabel(true),
		logging.WithTimestamp(settings.LogTimestamps),
	).With(ports.F("run_id", runID))

	console := ui.NewConsole(
		ui.WithWriters(cmd.OutOrStdout(), cmd.ErrOrStderr()),
		ui.WithNoColor(settings.NoColor),
	)

	return &session{settings: settings, logger: logger, console: console, runID: runID}, nil
}

// formatError returns a user-friendly error message.
// With verbose=false: shows only the user message and suggestion.
// With verbose=true: shows the full coded report, including the cause.
func formatError(err error) string {
	userErr := config.GetUserError(err)
	if userErr == nil {
		return err.Error()
	}
	if verbose {
		return userErr.Format()
	}

	msg := userErr.Error()
	if userErr.Suggestion != "" {
		msg += fmt.Sprintf("\n\nSuggestion: %s", userErr.Suggestion)
	}
	return msg
}

// printError prints an error message to stderr with proper formatting.
func printError(err error) {
	printErrorTo(os.Stderr, err)
}

// printErrorTo prints an error message to the given writer.
func printErrorTo(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "Error: %s\n", formatError(err))
}

// registerFlagCompletions sets up custom completions for global flags.
func registerFlagCompletions() {
	_ = rootCmd.RegisterFlagCompletionFunc("config", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"yaml", "yml", "toml"}, cobra.ShellCompDirectiveFilterFileExt
	})

	_ = rootCmd.RegisterFlagCompletionFunc("log-format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{
			"text\tkey=value lines",
			"json\tone JSON object per line",
		}, cobra.ShellCompDirectiveNoFileComp
	})
}
