package notify

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
)

// completion is a one-shot signal released from a Center callback and
// waited on by the dispatching goroutine.
//
// Only the first release takes effect. Later releases are counted and
// logged so a misbehaving backend cannot unblock the waiter twice.
type completion struct {
	once     sync.Once
	done     chan struct{}
	outcome  Outcome
	err      error
	attempts atomic.Int32
	logger   *log.Logger
}

func newCompletion(logger *log.Logger) *completion {
	return &completion{
		done:   make(chan struct{}),
		logger: logger,
	}
}

// release records the terminal outcome and unblocks wait.
// Returns false if the completion was already released.
func (c *completion) release(outcome Outcome, err error) bool {
	c.attempts.Add(1)

	released := false
	c.once.Do(func() {
		c.outcome = outcome
		c.err = err
		close(c.done)
		released = true
	})

	if !released {
		c.logger.Printf("[notify] warning: ignoring extra completion (%s) after %s", outcome, c.outcome)
	}
	return released
}

// wait blocks until release is called or ctx is done.
// With a context that is never cancelled, wait blocks until release.
func (c *completion) wait(ctx context.Context) (Outcome, error) {
	select {
	case <-c.done:
		return c.outcome, c.err
	case <-ctx.Done():
		return OutcomeTimedOut, ctx.Err()
	}
}

// releases returns how many times release was called
func (c *completion) releases() int {
	return int(c.attempts.Load())
}
