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

func TestHandleCheck(t *testing.T) {
	tests := []struct {
		name      string
		permitted bool
	}{
		{"permission granted", true},
		{"permission denied", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authz := NewMockAuthzStore()
			authz.On("HasPermission", int64(7), int64(42), "edit").Return(tt.permitted, nil)

			req := httptest.NewRequest("GET", "/authz/check?user_id=7&elem_id=42&operation_name=edit", nil)
			w := httptest.NewRecorder()

			handleCheck(authz)(w, req)

			require.Equal(t, http.StatusOK, w.Code)

			var resp CheckResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.permitted, resp.HasPermission)
			assert.Equal(t, int64(7), resp.UserID)
			assert.Equal(t, int64(42), resp.ElemID)
			assert.Equal(t, "edit", resp.OperationName)

			authz.AssertExpectations(t)
		})
	}
}

func TestHandleCheckMissingParams(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"missing user_id", "elem_id=42&operation_name=edit"},
		{"missing elem_id", "user_id=7&operation_name=edit"},
		{"missing operation_name", "user_id=7&elem_id=42"},
		{"malformed user_id", "user_id=seven&elem_id=42&operation_name=edit"},
		{"malformed elem_id", "user_id=7&elem_id=forty-two&operation_name=edit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authz := NewMockAuthzStore()

			req := httptest.NewRequest("GET", "/authz/check?"+tt.query, nil)
			w := httptest.NewRecorder()

			handleCheck(authz)(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			authz.AssertNotCalled(t, "HasPermission")
		})
	}
}

func TestHandleCheckStoreUnavailable(t *testing.T) {
	authz := NewMockAuthzStore()
	authz.On("HasPermission", int64(7), int64(42), "edit").
		Return(false, errors.New("dial tcp: connection refused"))

	req := httptest.NewRequest("GET", "/authz/check?user_id=7&elem_id=42&operation_name=edit", nil)
	w := httptest.NewRecorder()

	handleCheck(authz)(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.NotContains(t, w.Body.String(), "dial tcp", "raw store errors must not leak to callers")
}
