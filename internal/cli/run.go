package cli

import (
	"context"
	"io"
	"log"
	"os"
	"time"

	"github.com/claudenotifier/claude-notifier/internal/build"
	"github.com/claudenotifier/claude-notifier/internal/config"
	"github.com/claudenotifier/claude-notifier/internal/notify"
	"golang.org/x/term"
)

// runner holds the collaborators of a run so tests can replace them
type runner struct {
	configPath   func() string
	loadSettings func(path string) (*config.Settings, error)
	newCenter    func(backend, appName string, logger *log.Logger) notify.Center
	isTerminal   func(w io.Writer) bool
}

func defaultRunner() runner {
	return runner{
		configPath:   config.DefaultPath,
		loadSettings: config.Load,
		newCenter:    notify.NewCenter,
		isTerminal:   isTerminal,
	}
}

// run parses args, dispatches one notification and returns once the
// notification service has answered. Every failure is reported on stdout or
// stderr; none is returned.
func (r runner) run(ctx context.Context, args []string, stdout, stderr io.Writer) {
	settings, err := r.loadSettings(r.configPath())
	if err != nil {
		log.New(stderr, "", 0).Printf("[config] warning: %v, using defaults", err)
		settings = config.Defaults()
	}

	logger := log.New(io.Discard, "", log.LstdFlags)
	if settings.Debug {
		logger.SetOutput(stderr)
	}
	logger.Printf("[cli] %s on %s, backend %s", build.Info(), notify.Platform(), settings.Backend)

	req := notify.ParseArgs(args)

	if settings.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(settings.Timeout)*time.Second)
		defer cancel()
	}

	center := r.newCenter(settings.Backend, settings.AppName, logger)
	defer func() {
		if err := notify.CloseCenter(center); err != nil {
			logger.Printf("[cli] closing backend: %v", err)
		}
	}()

	d := notify.NewDispatcher(
		center,
		stdout,
		notify.WithLogger(logger),
		notify.WithColor(r.isTerminal(stdout)),
	)
	outcome := d.Dispatch(ctx, req)
	logger.Printf("[cli] finished: %s", outcome)
}

// isTerminal reports whether w is a terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
