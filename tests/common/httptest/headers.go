//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

const jsonContentType = "application/json; charset=utf-8"

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

func AssertJSON(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	AssertHeaders(t, w, map[string]string{"Content-Type": jsonContentType})
}
