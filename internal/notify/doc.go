// Package notify shows a single desktop notification through the host
// notification service.
//
// A run has three parts: ParseArgs turns the command-line tokens into a
// Request, a Center talks to the platform notification service, and a
// Dispatcher drives the authorize -> submit sequence and blocks until the
// service reports back.
//
// # Platform Support
//
//   - Linux: org.freedesktop.Notifications over the D-Bus session bus
//   - macOS: terminal-notifier when installed, osascript otherwise
//   - Windows: toast notifications
//   - Other: beeep
//
// # Usage
//
//	req := notify.ParseArgs(os.Args[1:])
//	center := notify.NewCenter(notify.BackendAuto, "Claude Code", logger)
//	d := notify.NewDispatcher(center, os.Stdout)
//	d.Dispatch(context.Background(), req)
package notify
