package notify

import (
	"io"
	"log"
	"runtime"
)

// Center is the host notification service.
//
// Both methods return immediately. The done callback is invoked exactly once,
// from a goroutine owned by the Center rather than the caller.
type Center interface {
	// RequestAuthorization asks the platform for permission to post
	// notifications with the given capabilities
	RequestAuthorization(caps Capabilities, done func(granted bool, err error))

	// Add submits a notification request
	Add(req PlatformRequest, done func(err error))
}

// CloseCenter releases resources held by center when it implements
// io.Closer. Centers without resources are left alone.
func CloseCenter(center Center) error {
	if c, ok := center.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Backend names accepted by NewCenter
const (
	// BackendAuto selects the native backend for the current platform
	BackendAuto = "auto"
	// BackendBeeep uses the beeep library on any platform
	BackendBeeep = "beeep"
	// BackendLog logs the request without showing anything
	BackendLog = "log"
)

// NewCenter returns the Center for the named backend.
// Unknown names fall back to BackendAuto.
func NewCenter(backend, appName string, logger *log.Logger) Center {
	switch backend {
	case BackendBeeep:
		return newBeeepCenter(appName)
	case BackendLog:
		return &logCenter{logger: logger}
	default:
		return newPlatformCenter(appName, logger)
	}
}

// Platform returns the current operating system name
func Platform() string {
	return runtime.GOOS
}

// logCenter grants every request and records submissions to the logger
type logCenter struct {
	logger *log.Logger
}

func (c *logCenter) RequestAuthorization(_ Capabilities, done func(bool, error)) {
	go done(true, nil)
}

func (c *logCenter) Add(req PlatformRequest, done func(error)) {
	go func() {
		c.logger.Printf("[notify] dry run: id=%q title=%q body=%q sound=%t interruption=%s",
			req.Identifier, req.Content.Title, req.Content.Body, req.Content.Sound, req.Content.Interruption)
		done(nil)
	}()
}
