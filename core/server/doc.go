// Package server holds the HTTP server configuration.
//
// The start command owns the Fiber app; this package only defines the listen
// port and the API key that protects the lookup and integrity routes.
package server
