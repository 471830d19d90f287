package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/sprintboard/internal/app"
	internalcli "github.com/thenoetrevino/sprintboard/internal/cli"
	"github.com/thenoetrevino/sprintboard/internal/testutil"
)

// Result is the captured outcome of one command run
type Result struct {
	Stdout string
	Stderr string
	Err    error
}

// ExitCode is the process exit code main would use for this run
func (r Result) ExitCode() int {
	return internalcli.ExitCode(r.Err)
}

// ExecuteCLICommand runs cmd against testApp, so commands resolve the test
// database through GetCLIFromContext instead of opening the real one.
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) Result {
	t.Helper()
	return ExecuteCLICommandWithContext(t, context.Background(), testApp, cmd, args)
}

// ExecuteCLICommandWithContext is ExecuteCLICommand with a caller supplied context
func ExecuteCLICommandWithContext(t *testing.T, ctx context.Context, testApp *app.App, cmd *cobra.Command, args []string) Result {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	testutil.SetupCobraCommand(cmd, args)

	var stderr bytes.Buffer
	cmd.SetErr(&stderr)

	var executeErr error
	stdout := testutil.CaptureOutput(t, func() {
		executeErr = cmd.ExecuteContext(internalcli.WithApp(ctx, testApp))
	})

	return Result{Stdout: stdout, Stderr: stderr.String(), Err: executeErr}
}

