package endpoints

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/blendata/cerberus/pkg/server"
	"github.com/blendata/cerberus/pkg/server/store"
)

// CreateElementRequest represents the body of POST /authz/elements
type CreateElementRequest struct {
	ComponentName string `json:"component_name"`
	ElemName      string `json:"elem_name"`
	UserID        *int64 `json:"user_id"`
}

// CreateElementResponse represents the response from POST /authz/elements
type CreateElementResponse struct {
	ComponentName     string  `json:"component_name"`
	ElemName          string  `json:"elem_name"`
	UserID            int64   `json:"user_id"`
	ElemID            int64   `json:"elem_id"`
	PermissionIDs     []int64 `json:"permission_ids"`
	UserPermissionIDs []int64 `json:"user_permission_ids"`
}

// RegisterElementsEndpoints registers the element creation endpoint
func RegisterElementsEndpoints(s *server.Server) {
	elementsStore := s.ElementsStore

	s.Router.HandleFunc("/authz/elements", handleCreateElement(elementsStore)).Methods("POST")
}

func handleCreateElement(elementsStore store.ElementsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateElementRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if req.ComponentName == "" {
			respondWithError(w, http.StatusBadRequest, "component_name is required")
			return
		}
		if req.ElemName == "" {
			respondWithError(w, http.StatusBadRequest, "elem_name is required")
			return
		}
		if req.UserID == nil {
			respondWithError(w, http.StatusBadRequest, "user_id is required")
			return
		}

		grant, err := elementsStore.CreateElement(req.ComponentName, req.ElemName, *req.UserID)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrComponentNotFound):
				respondWithError(w, http.StatusNotFound, "component not found")
			case errors.Is(err, store.ErrDuplicateElement):
				respondWithError(w, http.StatusConflict, "element name already exists in component")
			case errors.Is(err, store.ErrConstraintViolation):
				log.Printf("element grant rejected by store: %v", err)
				respondWithError(w, http.StatusUnprocessableEntity, "request violates a store constraint")
			default:
				log.Printf("element grant failed: %v", err)
				respondWithError(w, http.StatusServiceUnavailable, "authorization store unavailable")
			}
			return
		}

		respondWithJSON(w, http.StatusOK, CreateElementResponse{
			ComponentName:     req.ComponentName,
			ElemName:          req.ElemName,
			UserID:            *req.UserID,
			ElemID:            grant.ElementID,
			PermissionIDs:     grant.PermissionIDs,
			UserPermissionIDs: grant.UserPermissionIDs,
		})
	}
}
