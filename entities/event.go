package entities

// Event is a single message delivered by the streaming API. Exactly one of
// the concrete types below is produced per decoded frame.
type Event interface {
	eventName() string
}

// UpdateEvent carries a new status that appeared on the watched timeline.
type UpdateEvent struct {
	Status Status
}

func (UpdateEvent) eventName() string { return "update" }

// NotificationEvent carries a new notification for the authenticated user.
type NotificationEvent struct {
	Notification Notification
}

func (NotificationEvent) eventName() string { return "notification" }

// DeleteEvent reports that the status with the given id was deleted.
type DeleteEvent struct {
	ID string
}

func (DeleteEvent) eventName() string { return "delete" }

// FiltersChangedEvent reports that the user's filters were modified and
// should be re-fetched.
type FiltersChangedEvent struct{}

func (FiltersChangedEvent) eventName() string { return "filters_changed" }
