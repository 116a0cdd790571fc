//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// errorEnvelope mirrors the JSON written by httperr.AbortWithError.
type errorEnvelope struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail map[string]any `json:"detail"`
}

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String()) {
		return
	}

	if expectedStatus >= 200 && expectedStatus < 300 && targetStruct != nil {
		err := json.Unmarshal(w.Body.Bytes(), targetStruct)
		assert.NoError(t, err, "decode response JSON: %s", w.Body.String())
	}
}

// AssertErrorResponse checks the status and that the envelope message contains
// expectedErrorMsg. An empty expectedErrorMsg only checks the envelope decodes.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) {
	t.Helper()
	assertEnvelope(t, w, expectedStatus, expectedErrorMsg)
}

// AssertErrorDetail also compares the envelope's detail object.
func AssertErrorDetail(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string, detail map[string]any) {
	t.Helper()
	env := assertEnvelope(t, w, expectedStatus, expectedErrorMsg)
	assert.Equal(t, detail, env.Detail, "error detail mismatch")
}

func assertEnvelope(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) errorEnvelope {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())

	var env errorEnvelope
	err := json.Unmarshal(w.Body.Bytes(), &env)
	assert.NoError(t, err, "decode error response JSON: %s", w.Body.String())

	if expectedErrorMsg != "" {
		assert.Contains(t, env.Error.Message, expectedErrorMsg, "error message mismatch")
	}
	return env
}
