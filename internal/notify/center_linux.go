//go:build linux

package notify

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/godbus/dbus/v5"
)

const (
	dbusDest            = "org.freedesktop.Notifications"
	dbusPath            = dbus.ObjectPath("/org/freedesktop/Notifications")
	dbusNotify          = dbusDest + ".Notify"
	dbusGetCapabilities = dbusDest + ".GetCapabilities"

	// urgencyCritical is the freedesktop urgency level for notifications
	// that should not be suppressed
	urgencyCritical = byte(2)

	// defaultSoundName is a freedesktop sound theme name
	defaultSoundName = "message-new-instant"

	// expireDefault lets the server pick the timeout
	expireDefault = int32(-1)
)

// busCaller is the part of dbus.BusObject used here
type busCaller interface {
	Call(method string, flags dbus.Flags, args ...interface{}) *dbus.Call
}

// busConnector opens a session bus and returns the notifications object
// plus a function closing the connection
type busConnector func() (busCaller, func() error, error)

// dbusCenter implements Center over org.freedesktop.Notifications.
// The group is sent as a stack tag hint, which notification servers use to
// replace an earlier notification with the same tag.
type dbusCenter struct {
	appName string
	logger  *log.Logger
	connect busConnector

	mu      sync.Mutex
	obj     busCaller
	closeFn func() error
	closed  bool
}

// newPlatformCenter creates the D-Bus backend
func newPlatformCenter(appName string, logger *log.Logger) Center {
	return &dbusCenter{
		appName: appName,
		logger:  logger,
		connect: connectSessionBus,
	}
}

func connectSessionBus() (busCaller, func() error, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to session bus: %w", err)
	}
	return conn.Object(dbusDest, dbusPath), conn.Close, nil
}

// RequestAuthorization connects to the session bus and queries the
// notification server. A reachable server counts as permission granted.
func (c *dbusCenter) RequestAuthorization(_ Capabilities, done func(bool, error)) {
	go func() {
		obj, closeFn, err := c.connect()
		if err != nil {
			done(false, err)
			return
		}

		var caps []string
		if err := obj.Call(dbusGetCapabilities, 0).Store(&caps); err != nil {
			_ = closeFn()
			done(false, fmt.Errorf("querying notification server: %w", err))
			return
		}
		c.logger.Printf("[notify] server capabilities: %s", strings.Join(caps, ", "))

		c.mu.Lock()
		if c.closed {
			c.mu.Unlock()
			_ = closeFn()
			done(false, fmt.Errorf("dbus: %w", ErrClosed))
			return
		}
		c.obj = obj
		c.closeFn = closeFn
		c.mu.Unlock()

		done(true, nil)
	}()
}

// Add posts the notification and closes the bus connection before
// reporting back
func (c *dbusCenter) Add(req PlatformRequest, done func(error)) {
	go func() {
		c.mu.Lock()
		obj, closeFn := c.obj, c.closeFn
		c.obj, c.closeFn = nil, nil
		c.mu.Unlock()

		if obj == nil {
			done(fmt.Errorf("dbus notify: %w", ErrNotAuthorized))
			return
		}

		var id uint32
		call := obj.Call(dbusNotify, 0,
			c.appName,         // app_name
			uint32(0),         // replaces_id
			"",                // app_icon
			req.Content.Title, // summary
			req.Content.Body,  // body
			[]string{},        // actions
			dbusHints(req),    // hints
			expireDefault,     // expire_timeout
		)
		err := call.Store(&id)
		_ = closeFn()
		if err != nil {
			done(fmt.Errorf("dbus notify: %w", err))
			return
		}

		c.logger.Printf("[notify] posted %q as server id %d", req.Identifier, id)
		done(nil)
	}()
}

// Close releases a bus connection left open by an authorization whose
// submission never ran. It is safe to call more than once.
func (c *dbusCenter) Close() error {
	c.mu.Lock()
	closeFn := c.closeFn
	c.obj, c.closeFn = nil, nil
	c.closed = true
	c.mu.Unlock()

	if closeFn == nil {
		return nil
	}
	return closeFn()
}

// dbusHints maps request content onto freedesktop hints
func dbusHints(req PlatformRequest) map[string]dbus.Variant {
	hints := map[string]dbus.Variant{
		"x-canonical-private-synchronous": dbus.MakeVariant(req.Identifier),
		"x-dunst-stack-tag":               dbus.MakeVariant(req.Identifier),
	}

	if req.Content.Interruption == InterruptionTimeSensitive {
		hints["urgency"] = dbus.MakeVariant(urgencyCritical)
	}

	if req.Content.Sound {
		hints["sound-name"] = dbus.MakeVariant(defaultSoundName)
	} else {
		hints["suppress-sound"] = dbus.MakeVariant(true)
	}

	return hints
}
