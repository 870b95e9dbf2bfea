package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Validation failures are rejected before any storage access, so these run
// without Postgres or Redis behind them.

func postPreferences(t *testing.T, body string) (*httptest.ResponseRecorder, SavePreferencesResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/preferences", strings.NewReader(body))
	rr := httptest.NewRecorder()
	SavePreferences(rr, req)

	var resp SavePreferencesResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	return rr, resp
}

func TestSavePreferencesRejectsMissingDeviceID(t *testing.T) {
	rr, resp := postPreferences(t, `{"language":"Mandarin","country":"China","struggles":["Anxiety"]}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "device_id is required", resp.Message)
}

func TestSavePreferencesRejectsIncompleteRecord(t *testing.T) {
	rr, resp := postPreferences(t, `{"device_id":"44444444-4444-4444-4444-444444444444","language":"Mandarin"}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "Language, country and at least one struggle are required", resp.Message)
}

func TestSavePreferencesRejectsUnknownOption(t *testing.T) {
	rr, resp := postPreferences(t, `{"device_id":"44444444-4444-4444-4444-444444444444","language":"Klingon","country":"China","struggles":["Anxiety"]}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "Invalid preferences")
	assert.Contains(t, resp.Message, "Klingon")
}

func TestSavePreferencesRejectsMalformedBody(t *testing.T) {
	rr, resp := postPreferences(t, `{not json`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "Invalid request body", resp.Message)
}
