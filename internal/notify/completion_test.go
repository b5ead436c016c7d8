// Package notify_test tests the one-shot completion signal.
// Related: internal/notify/completion.go
// Tags: notify, concurrency, completion

package notify

import (
	"bytes"
	"context"
	"log"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletion_ReleaseOnce(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	c := newCompletion(log.New(&buf, "", 0))

	assert.True(t, c.release(OutcomeFailed, ErrMockAdd))
	assert.False(t, c.release(OutcomeDelivered, nil))
	assert.Equal(t, 2, c.releases())

	outcome, err := c.wait(context.Background())
	assert.Equal(t, OutcomeFailed, outcome)
	assert.ErrorIs(t, err, ErrMockAdd)
	assert.Contains(t, buf.String(), "ignoring extra completion")
}

func TestCompletion_ConcurrentRelease(t *testing.T) {
	t.Parallel()

	c := newCompletion(log.New(&bytes.Buffer{}, "", 0))

	var wins atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if c.release(OutcomeDelivered, nil) {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
	assert.Equal(t, 50, c.releases())
}

func TestCompletion_WaitBlocksUntilRelease(t *testing.T) {
	t.Parallel()

	c := newCompletion(log.New(&bytes.Buffer{}, "", 0))

	result := make(chan Outcome, 1)
	go func() {
		outcome, _ := c.wait(context.Background())
		result <- outcome
	}()

	select {
	case <-result:
		t.Fatal("wait returned before release")
	case <-time.After(20 * time.Millisecond):
	}

	c.release(OutcomeDenied, nil)

	select {
	case outcome := <-result:
		assert.Equal(t, OutcomeDenied, outcome)
	case <-time.After(2 * time.Second):
		t.Fatal("wait did not return after release")
	}
}

func TestCompletion_WaitContextDone(t *testing.T) {
	t.Parallel()

	c := newCompletion(log.New(&bytes.Buffer{}, "", 0))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	outcome, err := c.wait(ctx)
	require.Error(t, err)
	assert.Equal(t, OutcomeTimedOut, outcome)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// A late release still succeeds once and is not observable by the
	// finished waiter
	assert.True(t, c.release(OutcomeDelivered, nil))
	assert.False(t, c.release(OutcomeDelivered, nil))
}
