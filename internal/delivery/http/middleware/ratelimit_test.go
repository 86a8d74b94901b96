package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weddinginvitation/internal/delivery/http/helpers"
)

func TestRateLimiter_Limit(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Near-zero refill so only the burst is available during the test.
	rl := NewRateLimiter(ctx, 0.0001, 2)
	handler := rl.Limit(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	call := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "http://test/api/rsvp", nil)
		req.RemoteAddr = ip + ":5555"
		rr := httptest.NewRecorder()
		handler(rr, req)
		return rr
	}

	assert.Equal(t, http.StatusCreated, call("10.0.0.1").Code)
	assert.Equal(t, http.StatusCreated, call("10.0.0.1").Code)

	limited := call("10.0.0.1")
	require.Equal(t, http.StatusTooManyRequests, limited.Code)
	assert.Equal(t, "1", limited.Header().Get("Retry-After"))
	var body helpers.APIError
	require.NoError(t, json.NewDecoder(limited.Body).Decode(&body))
	assert.Equal(t, helpers.ErrCodeTooManyRequests, body.Code)

	assert.Equal(t, http.StatusCreated, call("10.0.0.2").Code, "other clients keep their own bucket")
}

func TestRateLimiter_evictIdle(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	rl := NewRateLimiter(ctx, 1, 1)

	rl.getVisitor("10.0.0.1")
	rl.evictIdle(time.Now())
	assert.Len(t, rl.visitors, 1)

	rl.evictIdle(time.Now().Add(visitorIdleTimeout + time.Second))
	assert.Empty(t, rl.visitors)
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{name: "forwarded for first hop", headers: map[string]string{"X-Forwarded-For": "1.1.1.1, 2.2.2.2"}, remote: "9.9.9.9:1", want: "1.1.1.1"},
		{name: "real ip", headers: map[string]string{"X-Real-IP": "3.3.3.3"}, remote: "9.9.9.9:1", want: "3.3.3.3"},
		{name: "remote addr", remote: "9.9.9.9:1234", want: "9.9.9.9"},
		{name: "remote addr without port", remote: "9.9.9.9", want: "9.9.9.9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "http://test/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, ClientIP(req))
		})
	}
}
