// Package cli provides the Cobra entry point for claude-notifier.
//
// The root command takes no subcommands and does not parse flags itself:
// the raw tokens go to notify.ParseArgs, which ignores anything it does not
// recognize instead of failing.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd(r runner) *cobra.Command {
	return &cobra.Command{
		Use:   "claude-notifier [-title <text>] [-message <text>] [-group <text>] [-nosound]",
		Short: "Show a desktop notification and exit",
		Long: `Show a desktop notification and exit

Requests permission from the system notification service, submits one
notification and waits for the service to accept it. Notifications sharing
a -group replace each other where the platform supports it.

The exit code is always 0. A refused permission prints
"Notification permission denied"; a rejected notification prints
"Error: <reason>".

Backend settings are read from $XDG_CONFIG_HOME/claude-notifier/config.json
and CLAUDE_NOTIFIER_* environment variables (backend, app_name, timeout, debug).`,
		Example: `  # Defaults: "Claude Code" / "Response complete", group claude-code
  claude-notifier

  # Custom text, replacing the previous build notification
  claude-notifier -title "Build" -message "Done" -group build-1

  # Without sound
  claude-notifier -nosound -title "Alert"`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		Run: func(cmd *cobra.Command, args []string) {
			r.run(cmd.Context(), args, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

// Execute runs the root command
func Execute() error {
	return execute(context.Background(), defaultRunner(), os.Args[1:], os.Stdout, os.Stderr)
}

// execute runs args through the root command.
//
// Cobra always installs its hidden shell-completion command and selects it
// when the first non-flag token names it. Those tokens are ordinary values
// here, so such runs skip cobra's command lookup.
func execute(ctx context.Context, r runner, args []string, stdout, stderr io.Writer) error {
	if hasCompletionToken(args) {
		r.run(ctx, args, stdout, stderr)
		return nil
	}

	cmd := newRootCmd(r)
	cmd.SetArgs(append([]string{}, args...))
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.ExecuteContext(ctx)
}

// hasCompletionToken reports whether args contain a name of cobra's hidden
// completion command
func hasCompletionToken(args []string) bool {
	for _, arg := range args {
		if arg == cobra.ShellCompRequestCmd || arg == cobra.ShellCompNoDescRequestCmd {
			return true
		}
	}
	return false
}
