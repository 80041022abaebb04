// Package server holds the HTTP server configuration.
//
// While the start command handles the server startup, this package defines the
// listen port and request timeouts applied to the Fiber application.
package server
