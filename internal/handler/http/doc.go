// Package http implements the HTTP transport layer of both services.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as request tracing, access logging, metrics, CORS, and
// request timeouts are handled in this package before requests are delegated
// to the service layer.
package http
