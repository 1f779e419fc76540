package elefren

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pwoolcoc/elefren/entities"
)

// Scopes is a set of OAuth scopes requested at registration.
type Scopes []string

const (
	// ScopeRead grants read access to the account's data.
	ScopeRead = "read"
	// ScopeWrite grants write access: posting, favouriting, following.
	ScopeWrite = "write"
	// ScopeFollow grants management of follows, blocks and mutes.
	ScopeFollow = "follow"
	// ScopePush grants management of push subscriptions.
	ScopePush = "push"
)

func (s Scopes) String() string {
	if len(s) == 0 {
		return ScopeRead
	}
	return strings.Join(s, " ")
}

// outOfBandRedirect tells the instance to display the authorization code to
// the user instead of redirecting.
const outOfBandRedirect = "urn:ietf:wg:oauth:2.0:oob"

// Registration registers a new app with an instance and walks the OAuth
// authorization-code flow.
type Registration struct {
	base       string
	clientName string
	redirect   string
	scopes     Scopes
	website    string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewRegistration prepares an app registration against the instance at base.
func NewRegistration(base, clientName string) *Registration {
	return &Registration{
		base:       base,
		clientName: clientName,
		redirect:   outOfBandRedirect,
		httpClient: http.DefaultClient,
		log:        zerolog.Nop(),
	}
}

// RedirectURI overrides the out-of-band default redirect.
func (r *Registration) RedirectURI(uri string) *Registration {
	r.redirect = uri
	return r
}

// Scopes sets the scopes to request.
func (r *Registration) Scopes(scopes ...string) *Registration {
	r.scopes = scopes
	return r
}

// Website sets the app's homepage, shown next to statuses it posts.
func (r *Registration) Website(site string) *Registration {
	r.website = site
	return r
}

// HTTPClient sets the http.Client used for the registration calls.
func (r *Registration) HTTPClient(c *http.Client) *Registration {
	r.httpClient = c
	return r
}

// Logger sets the logger used during registration.
func (r *Registration) Logger(log zerolog.Logger) *Registration {
	r.log = log
	return r
}

// Registered is an app known to the instance, ready to authorize a user.
type Registered struct {
	data       Data
	scopes     Scopes
	httpClient *http.Client
	log        zerolog.Logger
}

type registerAppBody struct {
	ClientName   string `json:"client_name"`
	RedirectURIs string `json:"redirect_uris"`
	Scopes       string `json:"scopes"`
	Website      string `json:"website,omitempty"`
}

// Register creates the app on the instance and returns the issued client
// credentials wrapped in a Registered.
func (r *Registration) Register(ctx context.Context) (*Registered, error) {
	m := &Mastodon{
		Data:       Data{Base: r.base},
		httpClient: r.httpClient,
		log:        r.log,
		userAgent:  defaultUserAgent(),
	}
	app, err := post[entities.Application](ctx, m, m.route("/api/v1/apps"), registerAppBody{
		ClientName:   r.clientName,
		RedirectURIs: r.redirect,
		Scopes:       r.scopes.String(),
		Website:      r.website,
	})
	if err != nil {
		return nil, err
	}
	if app.ClientID == nil || app.ClientSecret == nil {
		return nil, newErrorf(ErrDecode, "registration response missing client credentials")
	}
	return &Registered{
		data: Data{
			Base:         r.base,
			ClientID:     *app.ClientID,
			ClientSecret: *app.ClientSecret,
			Redirect:     r.redirect,
		},
		scopes:     r.scopes,
		httpClient: r.httpClient,
		log:        r.log,
	}, nil
}

// AuthorizeURL is the URL the user must visit to authorize the app. The
// instance then hands them an authorization code (or redirects with one).
func (r *Registered) AuthorizeURL() string {
	params := url.Values{
		"client_id":     {r.data.ClientID},
		"redirect_uri":  {r.data.Redirect},
		"response_type": {"code"},
		"scope":         {r.scopes.String()},
	}
	return r.data.Base + "/oauth/authorize?" + params.Encode()
}

type tokenBody struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	RedirectURI  string `json:"redirect_uri"`
	GrantType    string `json:"grant_type"`
	Code         string `json:"code"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// CompleteRegistration exchanges the authorization code for a bearer token
// and returns a ready-to-use client. Persist its Data to skip this flow on
// later runs.
func (r *Registered) CompleteRegistration(ctx context.Context, code string) (*Mastodon, error) {
	m := &Mastodon{
		Data:       r.data,
		httpClient: r.httpClient,
		log:        r.log,
		userAgent:  defaultUserAgent(),
	}
	token, err := post[tokenResponse](ctx, m, m.route("/oauth/token"), tokenBody{
		ClientID:     r.data.ClientID,
		ClientSecret: r.data.ClientSecret,
		RedirectURI:  r.data.Redirect,
		GrantType:    "authorization_code",
		Code:         code,
	})
	if err != nil {
		return nil, err
	}
	if token.AccessToken == "" {
		return nil, newErrorf(ErrDecode, "token response missing access token")
	}
	m.Data.Token = token.AccessToken
	return m, nil
}
