package endpoints

import (
	"net/http"

	"github.com/blendata/cerberus/pkg/server"
	"github.com/blendata/cerberus/pkg/server/store"
)

// HealthResponse represents the response from the /health endpoint
type HealthResponse struct {
	Database string `json:"database"`
}

// RegisterHealthEndpoint registers the /health endpoint
func RegisterHealthEndpoint(s *server.Server) {
	healthStore := s.HealthStore

	s.Router.HandleFunc("/health", handleHealth(healthStore)).Methods("GET")
}

func handleHealth(healthStore store.HealthStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, err := healthStore.DatabaseName()
		if err != nil {
			// The diagnostic endpoint is the one place raw store errors are
			// allowed to surface.
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}

		respondWithJSON(w, http.StatusOK, HealthResponse{Database: name})
	}
}
