package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/tunemix/tunemix/internal/cli"
	"github.com/tunemix/tunemix/pkg/fieldlist"
	"github.com/tunemix/tunemix/pkg/files"
	"github.com/tunemix/tunemix/pkg/models"
	"github.com/tunemix/tunemix/pkg/submit"
)

var (
	createName   string
	createFile   string
	createOutput string
	createCopy   bool

	clipboardWrite = clipboard.WriteAll
)

// CreateResult is what the create command reports
type CreateResult struct {
	PlaylistName string   `json:"playlistName" yaml:"playlist_name"`
	Keywords     []string `json:"keywords" yaml:"keywords"`
	URL          string   `json:"url" yaml:"url"`
}

// NewCreateCommand creates the create command
func NewCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create [keyword...]",
		Short: "Create a playlist without opening the builder",
		Long: `Create a playlist from keywords given as arguments or read from a file.

Keyword files hold one keyword per line. Blank lines are ignored.
Use --file - to read keywords from standard input.

Examples:
  # Create a playlist from arguments
  tunemix create "miles davis" "kind of blue" --name "Late Night"

  # Read keywords from a file
  tunemix create --file road-trip.txt --name "Road Trip"

  # Pipe keywords in and print JSON
  cat keywords.txt | tunemix create --file - --output json`,
		Args: cobra.ArbitraryArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && createFile == "" {
				return fmt.Errorf("no keywords given: pass them as arguments or use --file")
			}
			if err := cli.ValidateOutputFormat(createOutput); err != nil {
				return err
			}
			return cli.ValidatePlaylistName(createName)
		},
		RunE: runCreate,
	}

	cmd.Flags().StringVarP(&createName, "name", "n", "", "Playlist name (defaults.playlist_name when empty)")
	cmd.Flags().StringVarP(&createFile, "file", "f", "", "Read keywords from a file, one per line (- for stdin)")
	cmd.Flags().StringVarP(&createOutput, "output", "o", "text", "Output format (text, json, yaml)")
	cmd.Flags().BoolVar(&createCopy, "copy", false, "Copy the playlist link to the clipboard")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	cmdCtx, err := cli.NewCommandContext()
	if err != nil {
		return err
	}
	settings, err := cmdCtx.LoadSettings()
	if err != nil {
		return err
	}

	keywords := append([]string{}, args...)
	if createFile != "" {
		fromFile, err := files.ReadKeywordsFile(createFile, cmd.InOrStdin())
		if err != nil {
			return err
		}
		keywords = append(keywords, fromFile...)
	}

	name := createName
	if name == "" {
		name = settings.Defaults.PlaylistName
	}

	sub, err := buildSubmission(name, keywords)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), settings.Service.Timeout)
	defer cancel()

	client := submit.NewClient(settings.Service)
	res, err := client.Submit(ctx, sub)
	if err != nil {
		return fmt.Errorf("failed to create playlist: %w", err)
	}

	if createCopy || settings.UI.CopyURLOnSuccess {
		if err := clipboardWrite(res.URL); err != nil {
			cli.PrintWarning("Failed to copy link: %v", err)
		} else {
			cli.PrintInfo("Playlist link copied to clipboard")
		}
	}

	result := CreateResult{
		PlaylistName: sub.PlaylistName,
		Keywords:     sub.Keywords,
		URL:          res.URL,
	}

	if createOutput != string(cli.FormatText) {
		return cli.OutputResults(cmd.OutOrStdout(), createOutput, result)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "✓ Playlist created successfully!")
	if result.PlaylistName != "" {
		fmt.Fprintf(out, "  Name:     %s\n", result.PlaylistName)
	}
	fmt.Fprintf(out, "  Keywords: %s\n", strings.Join(result.Keywords, ", "))
	fmt.Fprintf(out, "  URL:      %s\n", result.URL)
	return nil
}

// buildSubmission runs keywords through the same field list the builder uses,
// so filtering and validation match the interactive path
func buildSubmission(name string, keywords []string) (models.Submission, error) {
	ctrl := fieldlist.New()
	ctrl.SetPlaylistName(name)
	for i, kw := range keywords {
		if i > 0 {
			ctrl.AppendField()
		}
		ctrl.EditField(ctrl.Len()-1, kw)
	}

	if err := ctrl.Validate(); err != nil {
		return models.Submission{}, err
	}
	return ctrl.PrepareSubmission(), nil
}
