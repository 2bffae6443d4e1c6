// Package server provides the HTTP server and routing for Cerberus.
//
// The Server struct holds the gorilla/mux router, the database handle and the
// injected stores. Endpoint handlers live in pkg/server/endpoints and receive
// their dependencies through the Server, never through globals.
package server
