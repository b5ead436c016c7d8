// claude-notifier - show one desktop notification and exit

package main

import (
	"fmt"
	"os"

	"github.com/claudenotifier/claude-notifier/internal/cli"
)

// The exit code is 0 on every path, including refused permission and
// rejected notifications.
func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}
