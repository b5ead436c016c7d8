//go:build windows

package notify

import (
	"fmt"
	"log"
	"os/exec"

	"github.com/go-toast/toast"
)

// toastCenter implements Center with Windows toast notifications.
// Toasts have no replace-by-tag support here, so groups do not coalesce.
type toastCenter struct {
	appID    string
	logger   *log.Logger
	lookPath func(string) (string, error)
	push     func(*toast.Notification) error
}

// newPlatformCenter creates the Windows backend
func newPlatformCenter(appName string, logger *log.Logger) Center {
	return &toastCenter{
		appID:    appName,
		logger:   logger,
		lookPath: exec.LookPath,
		push:     func(n *toast.Notification) error { return n.Push() },
	}
}

// RequestAuthorization grants when PowerShell, which delivers the toast, is
// available
func (c *toastCenter) RequestAuthorization(_ Capabilities, done func(bool, error)) {
	go func() {
		if _, err := c.lookPath("powershell"); err != nil {
			done(false, fmt.Errorf("%w: powershell not found", ErrNoBackend))
			return
		}
		done(true, nil)
	}()
}

func (c *toastCenter) Add(req PlatformRequest, done func(error)) {
	go func() {
		n := toastNotification(c.appID, req)
		if err := c.push(n); err != nil {
			done(fmt.Errorf("toast: %w", err))
			return
		}
		c.logger.Printf("[notify] toast shown for %q", req.Identifier)
		done(nil)
	}()
}

// toastNotification maps a request onto a toast
func toastNotification(appID string, req PlatformRequest) *toast.Notification {
	n := &toast.Notification{
		AppID:    appID,
		Title:    req.Content.Title,
		Message:  req.Content.Body,
		Audio:    toast.Silent,
		Duration: toast.Short,
	}
	if req.Content.Sound {
		n.Audio = toast.Default
	}
	if req.Content.Interruption == InterruptionTimeSensitive {
		n.Duration = toast.Long
	}
	return n
}
