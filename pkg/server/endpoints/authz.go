package endpoints

import (
	"log"
	"net/http"
	"strconv"

	"github.com/blendata/cerberus/pkg/server"
	"github.com/blendata/cerberus/pkg/server/store"
)

// CheckResponse represents the response from the /authz/check endpoint
type CheckResponse struct {
	HasPermission bool   `json:"has_permission"`
	UserID        int64  `json:"user_id"`
	ElemID        int64  `json:"elem_id"`
	OperationName string `json:"operation_name"`
}

// RegisterAuthzEndpoints registers the permission check endpoint
func RegisterAuthzEndpoints(s *server.Server) {
	authzStore := s.AuthzStore

	s.Router.HandleFunc("/authz/check", handleCheck(authzStore)).Methods("GET")
}

func handleCheck(authzStore store.AuthzStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		userID, err := requiredInt64Param(query.Get("user_id"))
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "user_id is required and must be an integer")
			return
		}
		elemID, err := requiredInt64Param(query.Get("elem_id"))
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "elem_id is required and must be an integer")
			return
		}
		operationName := query.Get("operation_name")
		if operationName == "" {
			respondWithError(w, http.StatusBadRequest, "operation_name is required")
			return
		}

		permitted, err := authzStore.HasPermission(userID, elemID, operationName)
		if err != nil {
			// Transient store failures are not retried at request time; a
			// retry here could not change the answer and hides outages.
			log.Printf("permission check failed: %v", err)
			respondWithError(w, http.StatusServiceUnavailable, "authorization store unavailable")
			return
		}

		respondWithJSON(w, http.StatusOK, CheckResponse{
			HasPermission: permitted,
			UserID:        userID,
			ElemID:        elemID,
			OperationName: operationName,
		})
	}
}

func requiredInt64Param(value string) (int64, error) {
	return strconv.ParseInt(value, 10, 64)
}
