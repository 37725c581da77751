// Package server runs the HTTP server of a service.
//
// It handles startup, signal handling, and graceful shutdown within the
// configured shutdown timeout.
package server
