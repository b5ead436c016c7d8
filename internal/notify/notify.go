package notify

// Default values for a Request when no flag overrides them.
const (
	DefaultTitle   = "Claude Code"
	DefaultMessage = "Response complete"
	DefaultGroup   = "claude-code"
)

// Request is the notification assembled from the command line.
type Request struct {
	// Title is the notification title
	Title string

	// Message is the notification body text
	Message string

	// Group is the identifier the notification service uses to replace
	// an earlier notification with the same group
	Group string

	// Sound plays the default notification sound when true
	Sound bool
}

// DefaultRequest returns a Request with default values
func DefaultRequest() Request {
	return Request{
		Title:   DefaultTitle,
		Message: DefaultMessage,
		Group:   DefaultGroup,
		Sound:   true,
	}
}

// PlatformRequest builds the payload submitted to a Center.
// The group becomes the request identifier.
func (r Request) PlatformRequest() PlatformRequest {
	return PlatformRequest{
		Identifier: r.Group,
		Content: Content{
			Title:        r.Title,
			Body:         r.Message,
			Sound:        r.Sound,
			Interruption: InterruptionTimeSensitive,
		},
	}
}

// Capabilities is the set of notification features requested from the
// platform during authorization.
type Capabilities uint8

const (
	// CapAlert allows banners and alerts
	CapAlert Capabilities = 1 << iota
	// CapSound allows playing a sound
	CapSound
	// CapBadge allows badging the application icon
	CapBadge
)

// Has reports whether all capabilities in other are set
func (c Capabilities) Has(other Capabilities) bool {
	return c&other == other
}

// InterruptionLevel is the urgency of a notification
type InterruptionLevel string

const (
	// InterruptionActive is the platform default
	InterruptionActive InterruptionLevel = "active"
	// InterruptionTimeSensitive asks the platform to show the notification
	// even when do-not-disturb style suppression is active
	InterruptionTimeSensitive InterruptionLevel = "time-sensitive"
)

// Content is the displayable part of a notification
type Content struct {
	Title        string
	Body         string
	Sound        bool
	Interruption InterruptionLevel
}

// PlatformRequest is a notification as handed to a Center
type PlatformRequest struct {
	// Identifier is unique per group; a second request with the same
	// identifier replaces the first one on platforms that support it
	Identifier string
	Content    Content
}

// Outcome is the terminal state reached by a Dispatch call
type Outcome int

const (
	// OutcomeDelivered means the service accepted the notification
	OutcomeDelivered Outcome = iota
	// OutcomeDenied means authorization was refused or failed
	OutcomeDenied
	// OutcomeFailed means the service rejected the notification
	OutcomeFailed
	// OutcomeTimedOut means the bounded wait expired before a callback fired
	OutcomeTimedOut
)

func (o Outcome) String() string {
	switch o {
	case OutcomeDelivered:
		return "delivered"
	case OutcomeDenied:
		return "denied"
	case OutcomeFailed:
		return "failed"
	case OutcomeTimedOut:
		return "timed out"
	default:
		return "unknown"
	}
}
