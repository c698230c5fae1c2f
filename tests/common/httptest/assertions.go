//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertSuccessResponse checks the status and decodes a 2xx body into target.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code, "response: %s", w.Body.String()) {
		return
	}
	if target != nil && expectedStatus >= 200 && expectedStatus < 300 {
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), target), "decode %s", w.Body.String())
	}
}

// errorResponse mirrors httperr.Response on the wire.
type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail json.RawMessage `json:"detail"`
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var res errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res), "decode error body %s", w.Body.String())
	return res
}

// AssertErrorResponse checks the status and that the message contains
// expectedMsg. An empty expectedMsg only checks the envelope.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "response: %s", w.Body.String())
	res := decodeError(t, w)
	if expectedMsg != "" {
		assert.Contains(t, res.Error.Message, expectedMsg)
	}
}

// AssertSlotTaken checks a 409 for an occupied slot and its free hours.
func AssertSlotTaken(t *testing.T, w *httptest.ResponseRecorder, expectedHours []int) {
	t.Helper()

	AssertErrorResponse(t, w, http.StatusConflict, "Slot already taken")
	var detail struct {
		AvailableHours []int `json:"available_hours"`
	}
	require.NoError(t, json.Unmarshal(decodeError(t, w).Detail, &detail))
	assert.Equal(t, expectedHours, detail.AvailableHours)
}

// AssertLocation checks the Location header of a 201.
func AssertLocation(t *testing.T, w *httptest.ResponseRecorder, expected string) {
	t.Helper()
	assert.Equal(t, expected, w.Header().Get("Location"))
}
