package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"
)

// beeepCenter posts notifications through beeep. It has no notion of
// groups, so requests with the same identifier are not coalesced.
type beeepCenter struct {
	notify func(title, message string) error
	beep   func() error
}

func newBeeepCenter(appName string) Center {
	beeep.AppName = appName
	return &beeepCenter{
		notify: func(title, message string) error {
			return beeep.Notify(title, message, "")
		},
		beep: func() error {
			return beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration)
		},
	}
}

// RequestAuthorization always grants; beeep has no permission step
func (c *beeepCenter) RequestAuthorization(_ Capabilities, done func(bool, error)) {
	go done(true, nil)
}

func (c *beeepCenter) Add(req PlatformRequest, done func(error)) {
	go func() {
		if err := c.notify(req.Content.Title, req.Content.Body); err != nil {
			done(fmt.Errorf("beeep notify: %w", err))
			return
		}
		if req.Content.Sound {
			_ = c.beep() // a missing sound does not fail the notification
		}
		done(nil)
	}()
}
