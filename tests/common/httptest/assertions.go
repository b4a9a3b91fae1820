//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail json.RawMessage `json:"detail"`
}

type notificationBody struct {
	Notification *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"notification"`
}

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String())) {
		return
	}

	if expectedStatus >= 200 && expectedStatus < 300 && targetStruct != nil {
		err := json.Unmarshal(w.Body.Bytes(), targetStruct)
		assert.NoError(t, err, fmt.Sprintf("Failed to decode response JSON: %s", w.Body.String()))
	}
}

// AssertErrorResponse matches expectedErrorMsg as a substring; an empty message only checks the shape
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d", expectedStatus, w.Code))

	var resp errorBody
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err, fmt.Sprintf("Failed to decode error response JSON: %s", w.Body.String()))

	if expectedErrorMsg != "" {
		assert.Contains(t, resp.Error.Message, expectedErrorMsg,
			"Response error message doesn't contain expected text")
	}
}

// AssertNotification reads the draft's notification from a success body or
// from the detail of an error body.
func AssertNotification(t *testing.T, w *httptest.ResponseRecorder, expectedType, expectedMsg string) {
	t.Helper()

	raw := w.Body.Bytes()
	if w.Code >= 400 {
		var resp errorBody
		require.NoError(t, json.Unmarshal(raw, &resp))
		require.NotEmpty(t, resp.Detail, "error response carries no draft")
		raw = resp.Detail
	}

	var body notificationBody
	require.NoError(t, json.Unmarshal(raw, &body), w.Body.String())
	require.NotNil(t, body.Notification, "draft has no notification: %s", w.Body.String())
	assert.Equal(t, expectedType, body.Notification.Type)
	assert.Equal(t, expectedMsg, body.Notification.Message)
}

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}
