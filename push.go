package elefren

import (
	"context"

	"github.com/pwoolcoc/elefren/entities"
)

// PushKeys are the client-side keys of a Web Push subscription.
type PushKeys struct {
	P256DH string `json:"p256dh"`
	Auth   string `json:"auth"`
}

// AddPushRequest describes the Web Push subscription to register.
type AddPushRequest struct {
	Endpoint string
	Keys     PushKeys
	// Alerts filters the delivered notification kinds; nil delivers the
	// server default set.
	Alerts *entities.PushAlerts
}

type pushSubscriptionBody struct {
	Endpoint string   `json:"endpoint"`
	Keys     PushKeys `json:"keys"`
}

type pushDataBody struct {
	Alerts *entities.PushAlerts `json:"alerts"`
}

type addPushBody struct {
	Subscription pushSubscriptionBody `json:"subscription"`
	Data         *pushDataBody        `json:"data,omitempty"`
}

// AddPushSubscription registers a Web Push subscription, replacing any
// previous subscription of this access token.
func (m *Mastodon) AddPushSubscription(ctx context.Context, req AddPushRequest) (entities.PushSubscription, error) {
	body := addPushBody{
		Subscription: pushSubscriptionBody{Endpoint: req.Endpoint, Keys: req.Keys},
	}
	if req.Alerts != nil {
		body.Data = &pushDataBody{Alerts: req.Alerts}
	}
	return post[entities.PushSubscription](ctx, m, m.route("/api/v1/push/subscription"), body)
}

// UpdatePushSubscription changes which alerts the current subscription
// delivers.
func (m *Mastodon) UpdatePushSubscription(ctx context.Context, alerts entities.PushAlerts) (entities.PushSubscription, error) {
	body := struct {
		Data pushDataBody `json:"data"`
	}{Data: pushDataBody{Alerts: &alerts}}
	return put[entities.PushSubscription](ctx, m, m.route("/api/v1/push/subscription"), body)
}

// GetPushSubscription returns the current push subscription.
func (m *Mastodon) GetPushSubscription(ctx context.Context) (entities.PushSubscription, error) {
	return get[entities.PushSubscription](ctx, m, m.route("/api/v1/push/subscription"))
}

// DeletePushSubscription removes the current push subscription.
func (m *Mastodon) DeletePushSubscription(ctx context.Context) error {
	_, err := del[entities.Empty](ctx, m, m.route("/api/v1/push/subscription"))
	return err
}
