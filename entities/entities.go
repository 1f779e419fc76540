// Package entities contains the data-transfer structs returned by the
// Mastodon REST and streaming APIs. They carry no behaviour beyond JSON
// field mapping; all request logic lives in the parent package.
package entities

// Empty is the body of API responses that return an empty JSON object.
type Empty struct{}
