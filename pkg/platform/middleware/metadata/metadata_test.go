package metadata

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akasenomm/intern-decision-engine-backend/pkg/requestcontext"
)

func TestRequestMetadata(t *testing.T) {
	var gotID, gotIP, gotUA string
	h := RequestMetadata(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = requestcontext.RequestID(r.Context())
		gotIP = requestcontext.ClientIP(r.Context())
		gotUA = requestcontext.UserAgent(r.Context())
	}))

	t.Run("issues a request id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.0.2.10:5555"
		req.Header.Set("User-Agent", "curl/8.0")
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)

		_, err := uuid.Parse(gotID)
		require.NoError(t, err)
		assert.Equal(t, gotID, rr.Header().Get(RequestIDHeader))
		assert.Equal(t, "192.0.2.10", gotIP)
		assert.Equal(t, "curl/8.0", gotUA)
	})

	t.Run("keeps caller request id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)

		assert.Equal(t, "abc-123", gotID)
		assert.Equal(t, "abc-123", rr.Header().Get(RequestIDHeader))
	})
}

func TestClientIPFromRequest(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"forwarded chain", map[string]string{"X-Forwarded-For": "203.0.113.1, 10.0.0.1"}, "10.0.0.2:80", "203.0.113.1"},
		{"real ip", map[string]string{"X-Real-IP": " 203.0.113.2 "}, "10.0.0.2:80", "203.0.113.2"},
		{"ipv6 remote", nil, "[::1]:8080", "::1"},
		{"remote without port", nil, "198.51.100.7", "198.51.100.7"},
		{"nothing", nil, "", "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, ClientIPFromRequest(req))
		})
	}
}
