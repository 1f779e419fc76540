package elefren

import (
	"context"

	"github.com/pwoolcoc/elefren/entities"
)

// Notifications returns the authenticated user's notifications, paginated.
func (m *Mastodon) Notifications(ctx context.Context) (*Page[entities.Notification], error) {
	return getPage[entities.Notification](ctx, m, m.route("/api/v1/notifications"))
}

// GetNotification looks up a single notification by id.
func (m *Mastodon) GetNotification(ctx context.Context, id string) (entities.Notification, error) {
	return get[entities.Notification](ctx, m, m.route("/api/v1/notifications/"+id))
}

// DismissNotification removes a single notification.
func (m *Mastodon) DismissNotification(ctx context.Context, id string) error {
	_, err := post[entities.Empty](ctx, m, m.route("/api/v1/notifications/"+id+"/dismiss"), nil)
	return err
}

// ClearNotifications removes all notifications.
func (m *Mastodon) ClearNotifications(ctx context.Context) error {
	_, err := post[entities.Empty](ctx, m, m.route("/api/v1/notifications/clear"), nil)
	return err
}
