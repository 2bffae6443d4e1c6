package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleHealth(t *testing.T) {
	health := NewMockHealthStore()
	health.On("DatabaseName").Return("auth", nil)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	handleHealth(health)(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "auth", resp.Database)
}

func TestHandleHealthStoreFailure(t *testing.T) {
	health := NewMockHealthStore()
	health.On("DatabaseName").Return("", errors.New("dial tcp: connection refused"))

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	handleHealth(health)(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	// Unlike the API endpoints, /health is allowed to be verbose.
	assert.Contains(t, w.Body.String(), "connection refused")
}

func TestHandleStatus(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	handleStatus()(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp StatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "cerberus", resp.Service)
	assert.Equal(t, "Online", resp.Status)
}
