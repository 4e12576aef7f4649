package usecase

import "context"

const (
	EventDraftUpdate  = "draft-update"
	EventLineupUpdate = "lineup-update"
	EventSeasonUpdate = "season-update"
	EventMatchUpdate  = "match-update"
)

// Event is a structured notification fanned out to connected viewers after
// a successful core mutation.
type Event struct {
	Type    string
	Payload any
}

// Notifier delivers events best-effort. Delivery is fire-and-forget: the
// emitting operation has already committed and never depends on whether any
// subscriber receives the event.
type Notifier interface {
	Publish(ctx context.Context, event Event)
}

// Announcer hands off a human-readable summary to an external channel.
// Failures are logged by the implementation and never reach the caller.
type Announcer interface {
	Announce(ctx context.Context, message string)
}

// NopNotifier discards events.
type NopNotifier struct{}

func (NopNotifier) Publish(context.Context, Event) {}

// NopAnnouncer discards announcements.
type NopAnnouncer struct{}

func (NopAnnouncer) Announce(context.Context, string) {}
