package elefren

// Data holds the OAuth credentials needed to access an instance. It is what
// an application persists between runs; see SaveData and LoadData.
type Data struct {
	// Base is the base URL of the instance, e.g. "https://mastodon.social".
	Base string `json:"base" toml:"base"`
	// ClientID is the client id issued when the app was registered.
	ClientID string `json:"client_id" toml:"client_id"`
	// ClientSecret is the client secret issued when the app was registered.
	ClientSecret string `json:"client_secret" toml:"client_secret"`
	// Redirect is the redirect URL the app was registered with.
	Redirect string `json:"redirect" toml:"redirect"`
	// Token is the bearer token obtained for a user.
	Token string `json:"token" toml:"token"`
}
