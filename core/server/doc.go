// Package server holds the HTTP server partial configuration.
//
// The actual Fiber application is assembled in cmd/start.go; this package
// only defines the settings (port, API key) that the config loader binds
// from the environment.
package server
