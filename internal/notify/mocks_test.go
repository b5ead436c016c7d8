// Package notify_test provides a mock Center for dispatcher tests.
// Related: internal/notify/center.go
// Tags: notify, mocks, testing

package notify

import (
	"errors"
	"sync"
	"testing"
	"time"
)

// MockCenter is a Center that records calls and fires callbacks on
// separate goroutines, the way platform services do.
type MockCenter struct {
	mu sync.Mutex
	wg sync.WaitGroup

	// Configuration
	Granted   bool
	AuthError error
	AddError  error
	// Silent never invokes callbacks, simulating a hung service
	Silent bool
	// Repeat invokes each callback this many times (default 1)
	Repeat int

	// Call tracking
	AuthCalls    []Capabilities
	AddCalls     []PlatformRequest
	LastRequest  PlatformRequest
	AuthCallback int
	AddCallback  int
}

// NewMockCenter creates a mock that grants authorization and accepts requests
func NewMockCenter() *MockCenter {
	return &MockCenter{Granted: true, Repeat: 1}
}

// WithDenied configures the mock to refuse authorization
func (m *MockCenter) WithDenied() *MockCenter {
	m.Granted = false
	return m
}

// WithAuthError configures the mock to fail authorization with err
func (m *MockCenter) WithAuthError(err error) *MockCenter {
	m.AuthError = err
	return m
}

// WithAddError configures the mock to reject submissions with err
func (m *MockCenter) WithAddError(err error) *MockCenter {
	m.AddError = err
	return m
}

// WithSilent configures the mock to never call back
func (m *MockCenter) WithSilent() *MockCenter {
	m.Silent = true
	return m
}

// WithRepeat configures how many times each callback fires
func (m *MockCenter) WithRepeat(n int) *MockCenter {
	m.Repeat = n
	return m
}

func (m *MockCenter) RequestAuthorization(caps Capabilities, done func(bool, error)) {
	m.mu.Lock()
	m.AuthCalls = append(m.AuthCalls, caps)
	granted, err, silent, repeat := m.Granted, m.AuthError, m.Silent, m.Repeat
	m.mu.Unlock()

	if silent {
		return
	}
	for i := 0; i < repeat; i++ {
		m.wg.Add(1)
		go func() {
			defer m.wg.Done()
			m.mu.Lock()
			m.AuthCallback++
			m.mu.Unlock()
			done(granted, err)
		}()
	}
}

func (m *MockCenter) Add(req PlatformRequest, done func(error)) {
	m.mu.Lock()
	m.AddCalls = append(m.AddCalls, req)
	m.LastRequest = req
	err, repeat := m.AddError, m.Repeat
	m.mu.Unlock()

	for i := 0; i < repeat; i++ {
		m.wg.Add(1)
		go func() {
			defer m.wg.Done()
			m.mu.Lock()
			m.AddCallback++
			m.mu.Unlock()
			done(err)
		}()
	}
}

// Wait blocks until every callback goroutine has returned
func (m *MockCenter) Wait(t *testing.T) {
	t.Helper()

	finished := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("mock center callbacks did not finish")
	}
}

// AddCount returns the number of submissions
func (m *MockCenter) AddCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.AddCalls)
}

// Common test errors
var (
	ErrMockAuth = errors.New("mock authorization error")
	ErrMockAdd  = errors.New("mock submission error")
)

// authorize calls RequestAuthorization and waits for the callback
func authorize(t *testing.T, c Center) (bool, error) {
	t.Helper()

	type result struct {
		granted bool
		err     error
	}
	ch := make(chan result, 1)
	c.RequestAuthorization(requestedCapabilities, func(granted bool, err error) {
		ch <- result{granted, err}
	})

	select {
	case r := <-ch:
		return r.granted, r.err
	case <-time.After(2 * time.Second):
		t.Fatal("authorization callback not invoked")
		return false, nil
	}
}

// submit calls Add and waits for the callback
func submit(t *testing.T, c Center, req PlatformRequest) error {
	t.Helper()

	ch := make(chan error, 1)
	c.Add(req, func(err error) {
		ch <- err
	})

	select {
	case err := <-ch:
		return err
	case <-time.After(2 * time.Second):
		t.Fatal("submission callback not invoked")
		return nil
	}
}
