package entities

// PushAlerts selects which notification kinds a push subscription delivers.
// Nil fields keep the server's current setting.
type PushAlerts struct {
	Follow    *bool `json:"follow,omitempty"`
	Favourite *bool `json:"favourite,omitempty"`
	Reblog    *bool `json:"reblog,omitempty"`
	Mention   *bool `json:"mention,omitempty"`
}

// PushSubscription is a Web Push subscription registered with the instance.
type PushSubscription struct {
	ID        string      `json:"id"`
	Endpoint  string      `json:"endpoint"`
	ServerKey string      `json:"server_key"`
	Alerts    *PushAlerts `json:"alerts"`
}
