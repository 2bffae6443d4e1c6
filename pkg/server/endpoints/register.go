package endpoints

import (
	"github.com/blendata/cerberus/pkg/server"
)

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterAuthzEndpoints(srv)
	RegisterElementsEndpoints(srv)
	RegisterHealthEndpoint(srv)
	RegisterStatusEndpoint(srv)
}
