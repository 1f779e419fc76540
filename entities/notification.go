package entities

import "time"

// NotificationType is the kind of event that triggered a notification.
type NotificationType string

const (
	NotificationMention       NotificationType = "mention"
	NotificationReblog        NotificationType = "reblog"
	NotificationFavourite     NotificationType = "favourite"
	NotificationFollow        NotificationType = "follow"
	NotificationFollowRequest NotificationType = "follow_request"
	NotificationPoll          NotificationType = "poll"
	NotificationStatus        NotificationType = "status"
)

// Notification of an event relevant to the authenticated user.
type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	CreatedAt time.Time        `json:"created_at"`
	Account   Account          `json:"account"`
	// Status is only present for mention, reblog, favourite, poll and
	// status notifications.
	Status *Status `json:"status"`
}
