package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tunemix/tunemix/cmd/commands"
	"github.com/tunemix/tunemix/internal/cli"
	"github.com/tunemix/tunemix/pkg/submit"
	"github.com/tunemix/tunemix/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

// debugEnv names the log file written while the TUI owns the terminal
const debugEnv = "TUNEMIX_DEBUG"

var (
	configFlag  string
	quietFlag   bool
	noColorFlag bool
	yesFlag     bool
)

var rootCmd = &cobra.Command{
	Use:   "tunemix",
	Short: "Build playlists from keywords in your terminal",
	Long: `Tunemix turns a playlist name and a list of search keywords into a
shareable playlist. Run it without arguments to open the interactive
builder, or use 'tunemix create' from scripts.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cli.SetGlobalFlags(quietFlag, noColorFlag, yesFlag)
		cli.SetConfigPath(configFlag)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		closeLog, err := setupLogging()
		if err != nil {
			return err
		}
		defer closeLog()

		ctx, err := cli.NewCommandContext()
		if err != nil {
			return err
		}
		settings := ctx.LoadSettingsWithDefault()
		log.Printf("settings from %s, service %s", ctx.ConfigPath, settings.Service.BaseURL)

		opts := []tea.ProgramOption{tea.WithAltScreen()}
		if settings.UI.Mouse {
			opts = append(opts, tea.WithMouseCellMotion())
		}

		app := tui.NewApp(settings, submit.NewClient(settings.Service))
		p := tea.NewProgram(app, opts...)
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to start the terminal user interface: %v\n", err)
			fmt.Fprintf(os.Stderr, "This could be due to terminal compatibility issues. Try running in a different terminal.\n")
			os.Exit(1)
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Tunemix",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "Tunemix version %s\n", version)
	},
}

// setupLogging sends log output to the file named by TUNEMIX_DEBUG, or discards it.
// The TUI draws on stdout, so nothing may be logged there.
func setupLogging() (func(), error) {
	path := os.Getenv(debugEnv)
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := tea.LogToFile(path, "tunemix")
	if err != nil {
		return nil, fmt.Errorf("failed to open debug log %s: %w", path, err)
	}
	return func() { f.Close() }, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Settings file (default: user config dir/tunemix/settings.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "Suppress informational output")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Plain text markers instead of symbols")
	rootCmd.PersistentFlags().BoolVarP(&yesFlag, "yes", "y", false, "Answer yes to confirmation prompts")

	rootCmd.AddCommand(commands.NewCreateCommand())
	rootCmd.AddCommand(commands.NewConfigCommand())
	rootCmd.AddCommand(commands.NewMockServerCommand())
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
