//go:build darwin

package notify

import (
	"fmt"
	"log"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
)

const (
	terminalNotifier = "terminal-notifier"
	osascript        = "osascript"
)

// runner executes a command and returns its combined output
type runner func(name string, args ...string) ([]byte, error)

func runCommand(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).CombinedOutput()
}

// darwinCenter implements Center for macOS.
//
// terminal-notifier is preferred because it understands groups; osascript
// is the fallback and cannot replace earlier notifications.
type darwinCenter struct {
	logger   *log.Logger
	run      runner
	lookPath func(string) (string, error)

	mu   sync.Mutex
	tool string
}

// newPlatformCenter creates the macOS backend
func newPlatformCenter(_ string, logger *log.Logger) Center {
	return &darwinCenter{
		logger:   logger,
		run:      runCommand,
		lookPath: exec.LookPath,
	}
}

// RequestAuthorization grants when one of the notification tools is on PATH
func (c *darwinCenter) RequestAuthorization(_ Capabilities, done func(bool, error)) {
	go func() {
		for _, name := range []string{terminalNotifier, osascript} {
			path, err := c.lookPath(name)
			if err != nil {
				continue
			}

			c.mu.Lock()
			c.tool = path
			c.mu.Unlock()

			c.logger.Printf("[notify] using %s", path)
			done(true, nil)
			return
		}
		done(false, ErrNoBackend)
	}()
}

func (c *darwinCenter) Add(req PlatformRequest, done func(error)) {
	go func() {
		c.mu.Lock()
		tool := c.tool
		c.mu.Unlock()

		if tool == "" {
			done(fmt.Errorf("macos notify: %w", ErrNotAuthorized))
			return
		}

		var args []string
		if filepath.Base(tool) == terminalNotifier {
			args = terminalNotifierArgs(req)
		} else {
			args = osascriptArgs(req)
		}

		if out, err := c.run(tool, args...); err != nil {
			msg := strings.TrimSpace(string(out))
			if msg == "" {
				done(fmt.Errorf("%s: %w", filepath.Base(tool), err))
				return
			}
			done(fmt.Errorf("%s: %w: %s", filepath.Base(tool), err, msg))
			return
		}
		done(nil)
	}()
}

// terminalNotifierArgs builds terminal-notifier flags. -group replaces an
// earlier notification with the same identifier.
func terminalNotifierArgs(req PlatformRequest) []string {
	args := []string{
		"-title", req.Content.Title,
		"-message", req.Content.Body,
		"-group", req.Identifier,
	}
	if req.Content.Sound {
		args = append(args, "-sound", "default")
	}
	if req.Content.Interruption == InterruptionTimeSensitive {
		args = append(args, "-ignoreDnD")
	}
	return args
}

// osascriptArgs builds an AppleScript display notification command
func osascriptArgs(req PlatformRequest) []string {
	script := fmt.Sprintf(`display notification %q with title %q`, req.Content.Body, req.Content.Title)
	if req.Content.Sound {
		script += ` sound name "default"`
	}
	return []string{"-e", script}
}
