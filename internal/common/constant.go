package common

// RequestIDHeaderName is the HTTP header that carries the per-request
// identifier assigned by the REST server.
const RequestIDHeaderName = "X-Request-ID"
