//go:build !linux && !darwin && !windows

package notify

import "log"

// newPlatformCenter falls back to beeep on platforms without a native backend
func newPlatformCenter(appName string, _ *log.Logger) Center {
	return newBeeepCenter(appName)
}
