// Package client is the CLI's view of the project manager REST API.
//
// The Client interface lists one method per endpoint; HTTPClient implements
// it over net/http. A non-200 reply becomes an *APIError carrying the
// server's detail text, and transport failures wrap ErrUnavailable, so
// callers can tell the two apart with errors.As / errors.Is.
//
// Nothing is cached: every call is a round trip.
package client
