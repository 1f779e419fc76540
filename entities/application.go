package entities

// Application identifies the client that posted a status. The client id and
// secret are only present in the response to an app registration.
type Application struct {
	Name         string  `json:"name"`
	Website      *string `json:"website"`
	VapidKey     *string `json:"vapid_key"`
	ClientID     *string `json:"client_id"`
	ClientSecret *string `json:"client_secret"`
}
