// Package images implements the image proxy endpoint.
//
// A request names an object path and optionally a bucket. The object is
// served through one of two routes:
//  1. Public: when a base storage URL is configured and a HEAD request to the
//     object's public URL succeeds, the client is redirected there with a
//     long-lived immutable cache policy, so a CDN can serve it.
//  2. Private: otherwise the object is downloaded with the service credential
//     and returned with a short revalidating cache policy.
//
// A failed public probe is logged and falls through to the private route; it
// does not distinguish "object not public" from a network failure.
//
// # Components
//
//   - Target: path validation, bucket override and MIME detection.
//   - Service: the public probe and the private download.
//   - Handler: maps outcomes to HTTP responses.
//   - Loader: Registers the feature with the application.
//
// # HTTP Endpoints
//
//   - GET /api/images/*path?bucket= : 302 (public), 200 (private), 400, 404, 500.
package images
