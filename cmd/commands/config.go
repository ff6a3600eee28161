package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tunemix/tunemix/internal/cli"
	"github.com/tunemix/tunemix/pkg/files"
)

var (
	configForce  bool
	configOutput string
)

// NewConfigCommand creates the config command and its subcommands
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the settings file",
		Long: `Manage the YAML settings file.

The file lives in your user config directory unless --config or
TUNEMIX_CONFIG points elsewhere. TUNEMIX_SERVICE_URL overrides
service.base_url for a single run.`,
	}

	cmd.AddCommand(newConfigInitCommand())
	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigPathCommand())

	return cmd
}

func newConfigInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default settings file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := cli.NewCommandContext()
			if err != nil {
				return err
			}

			force := configForce
			if ctx.ConfigExists() && !force {
				ok, err := cli.Confirm(fmt.Sprintf("Overwrite %s?", ctx.ConfigPath), false)
				if err != nil {
					return err
				}
				if !ok {
					cli.PrintInfo("Kept existing settings")
					return nil
				}
				force = true
			}

			if err := files.InitSettings(ctx.ConfigPath, force); err != nil {
				return err
			}
			cli.PrintSuccess("Wrote default settings to %s", ctx.ConfigPath)
			return nil
		},
	}

	cmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing settings file")

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.ValidateOutputFormat(configOutput)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := cli.NewCommandContext()
			if err != nil {
				return err
			}
			settings, err := ctx.LoadSettings()
			if err != nil {
				return err
			}

			if configOutput != string(cli.FormatText) {
				return cli.OutputResults(cmd.OutOrStdout(), configOutput, settings)
			}

			table := cli.NewTableFormatter(cmd.OutOrStdout())
			table.Header("KEY", "VALUE")
			table.Row("service.base_url", settings.Service.BaseURL)
			table.Row("service.endpoint", settings.Service.Endpoint)
			table.Row("service.timeout", settings.Service.Timeout.String())
			table.Row("ui.block_duplicate_submit", strconv.FormatBool(settings.UI.BlockDuplicateSubmit))
			table.Row("ui.copy_url_on_success", strconv.FormatBool(settings.UI.CopyURLOnSuccess))
			table.Row("ui.mouse", strconv.FormatBool(settings.UI.Mouse))
			table.Row("ui.keyword_placeholder", cli.TruncateString(settings.UI.KeywordPlaceholder, 40))
			table.Row("ui.name_placeholder", cli.TruncateString(settings.UI.NamePlaceholder, 40))
			table.Row("defaults.playlist_name", settings.Defaults.PlaylistName)
			table.Flush()
			return nil
		},
	}

	cmd.Flags().StringVarP(&configOutput, "output", "o", "text", "Output format (text, json, yaml)")

	return cmd
}

func newConfigPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print where the settings file is read from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := cli.NewCommandContext()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ctx.ConfigPath)
			return nil
		},
	}
}
