// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - RayID: Assigns a unique Request ID (RayID) to every incoming request,
//     injecting it into the context and response headers for tracing.
//
// Request logging and panic recovery are registered globally in the start command.
package middleware
