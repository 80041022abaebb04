// Package health reports whether the storage backend can serve private images.
//
// The check uses the same service client as the image proxy's private route
// and verifies that the configured default bucket exists.
//
// # HTTP Endpoints
//
//   - GET /health : 200 when the default bucket is reachable, 503 otherwise.
package health
