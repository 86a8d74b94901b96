package controllers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthController_Health(t *testing.T) {
	t.Run("store reachable", func(t *testing.T) {
		rr := httptest.NewRecorder()
		NewHealthController(testLogger, fakePinger{}).Health(rr, httptest.NewRequest(http.MethodGet, "http://test/healthz", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
	})

	t.Run("store down", func(t *testing.T) {
		rr := httptest.NewRecorder()
		NewHealthController(testLogger, fakePinger{err: errors.New("dial tcp: refused")}).Health(rr, httptest.NewRequest(http.MethodGet, "http://test/healthz", nil))

		require.Equal(t, http.StatusServiceUnavailable, rr.Code)
		assert.JSONEq(t, `{"status":"unavailable"}`, rr.Body.String())
	})
}
