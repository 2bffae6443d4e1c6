package endpoints

import (
	"net/http"
	"os"

	"github.com/blendata/cerberus/pkg/server"
)

// StatusResponse represents the response from the status endpoint
type StatusResponse struct {
	Service string `json:"service"`
	Status  string `json:"status"`
	Version string `json:"version"`
}

// RegisterStatusEndpoint registers the root status endpoint. It requires no
// store round-trip so it can answer before the database is warm; readiness
// probes that need the store should use /health instead.
func RegisterStatusEndpoint(s *server.Server) {
	s.Router.HandleFunc("/", handleStatus()).Methods("GET")
}

func handleStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		version := os.Getenv("CERBERUS_VERSION_DISPLAY")
		if version == "" {
			version = "0.1.0"
		}

		respondWithJSON(w, http.StatusOK, StatusResponse{
			Service: "cerberus",
			Status:  "Online",
			Version: version,
		})
	}
}
