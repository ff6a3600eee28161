package commands

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/tunemix/tunemix/internal/cli"
)

// runCommand executes cmd with args and returns everything it wrote
func runCommand(t *testing.T, cmd *cobra.Command, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// useTempConfig points the commands at a settings file inside a temp dir
// and captures the cli package's own output
func useTempConfig(t *testing.T, input string) (string, *bytes.Buffer) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	var msgs bytes.Buffer
	cli.SetConfigPath(path)
	cli.SetIO(strings.NewReader(input), &msgs, &msgs)
	t.Cleanup(func() {
		cli.SetConfigPath("")
		cli.SetIO(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
	})
	return path, &msgs
}
