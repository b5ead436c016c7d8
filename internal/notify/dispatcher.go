package notify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/fatih/color"
)

// Messages written to the output writer on the failure paths
const (
	MsgPermissionDenied = "Notification permission denied"
	MsgTimedOut         = "timed out waiting for notification service"
)

var (
	// ErrTimedOut is reported when the bounded wait expires
	ErrTimedOut = errors.New(MsgTimedOut)
	// ErrNoBackend is reported when no notification tool is available
	ErrNoBackend = errors.New("no notification backend available")
	// ErrNotAuthorized is reported when Add is called before a successful
	// authorization
	ErrNotAuthorized = errors.New("notification center not authorized")
	// ErrClosed is reported when a Center is used after Close
	ErrClosed = errors.New("notification center closed")
)

// requestedCapabilities is what Dispatch asks the platform for
const requestedCapabilities = CapAlert | CapSound | CapBadge

// Dispatcher submits one notification through a Center and waits for the
// platform to report back.
type Dispatcher struct {
	center   Center
	out      io.Writer
	logger   *log.Logger
	warnText *color.Color
	errText  *color.Color
}

// Option configures a Dispatcher
type Option func(*Dispatcher)

// WithLogger sets the debug logger. The default logger discards output.
func WithLogger(logger *log.Logger) Option {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithColor enables or disables colored diagnostics
func WithColor(enabled bool) Option {
	return func(d *Dispatcher) {
		for _, c := range []*color.Color{d.warnText, d.errText} {
			if enabled {
				c.EnableColor()
			} else {
				c.DisableColor()
			}
		}
	}
}

// NewDispatcher creates a dispatcher that writes diagnostics to out.
// Colors are off unless WithColor(true) is given.
func NewDispatcher(center Center, out io.Writer, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		center:   center,
		out:      out,
		logger:   log.New(io.Discard, "", 0),
		warnText: color.New(color.FgYellow),
		errText:  color.New(color.FgRed),
	}
	d.warnText.DisableColor()
	d.errText.DisableColor()

	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch requests authorization, submits req and blocks until the Center
// reports a terminal result or ctx is done.
//
// Authorization and submission callbacks run on goroutines owned by the
// Center. Every terminal branch releases the same one-shot completion, and
// diagnostics are written from the calling goroutine after the wait, so a
// late callback never writes to out.
//
// Failures are reported on out and through the returned Outcome; they are
// never returned as errors.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) Outcome {
	done := d.start(req)

	outcome, err := done.wait(ctx)
	switch outcome {
	case OutcomeDenied:
		if err != nil {
			d.logger.Printf("[notify] authorization failed: %v", err)
		}
		d.warnText.Fprintln(d.out, MsgPermissionDenied)
	case OutcomeFailed:
		d.errText.Fprintln(d.out, fmt.Sprintf("Error: %v", err))
	case OutcomeTimedOut:
		d.logger.Printf("[notify] wait ended: %v", err)
		d.errText.Fprintln(d.out, fmt.Sprintf("Error: %v", ErrTimedOut))
	}

	d.logger.Printf("[notify] request %q %s", req.Group, outcome)
	return outcome
}

// start issues the authorization request and chains the submission onto its
// callback. The returned completion is released exactly once per path.
func (d *Dispatcher) start(req Request) *completion {
	done := newCompletion(d.logger)
	platformReq := req.PlatformRequest()

	d.center.RequestAuthorization(requestedCapabilities, func(granted bool, err error) {
		if !granted || err != nil {
			done.release(OutcomeDenied, err)
			return
		}

		d.logger.Printf("[notify] authorized, submitting %q", platformReq.Identifier)
		d.center.Add(platformReq, func(err error) {
			if err != nil {
				done.release(OutcomeFailed, err)
				return
			}
			done.release(OutcomeDelivered, nil)
		})
	})

	return done
}
