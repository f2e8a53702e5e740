package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestEnableCORS(t *testing.T) {
	h := EnableCORS([]string{"http://localhost:3000"})(okHandler)

	tests := []struct {
		name        string
		method      string
		origin      string
		wantOrigin  string
		wantHandled bool
	}{
		{"allowed origin", http.MethodGet, "http://localhost:3000", "http://localhost:3000", true},
		{"unknown origin", http.MethodGet, "http://evil.example", "", true},
		{"no origin", http.MethodGet, "", "*", true},
		{"preflight", http.MethodOptions, "http://localhost:3000", "http://localhost:3000", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/statistics", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestRateLimiter_PerClient(t *testing.T) {
	rl := NewRateLimiter(time.Hour, 2)
	h := rl.Middleware(okHandler)

	send := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1:1000"))
	assert.Equal(t, http.StatusOK, send("10.0.0.1:1001"), "port does not identify the client")
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1:1002"))

	assert.Equal(t, http.StatusOK, send("10.0.0.2:1000"), "other clients keep their own budget")
}

func TestClientAddress(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.1.5:5555"
	assert.Equal(t, "192.168.1.5", clientAddress(req))

	req.RemoteAddr = "192.168.1.5"
	assert.Equal(t, "192.168.1.5", clientAddress(req))
}

func TestRequestLogger_PassesStatusThrough(t *testing.T) {
	h := RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))
}
