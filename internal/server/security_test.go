package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAuthMiddleware(t *testing.T) {
	apiKey := "secret-key"
	detector := NewSuspiciousActivityDetector()
	middleware := AuthMiddleware(apiKey, nil, detector)

	tests := []struct {
		name           string
		providedKey    string
		path           string
		expectedStatus int
	}{
		{
			name:           "Valid API Key",
			providedKey:    apiKey,
			path:           "/api/v1/quests/",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid API Key",
			providedKey:    "wrong-key",
			path:           "/api/v1/quests/",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Missing API Key",
			providedKey:    "",
			path:           "/api/v1/character/",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Public Path - Healthz",
			providedKey:    "",
			path:           "/healthz",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Public Path - Metrics",
			providedKey:    "",
			path:           "/metrics",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Public Path - Event Stream",
			providedKey:    "",
			path:           "/events",
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.providedKey != "" {
				req.Header.Set(HeaderAPIKey, tt.providedKey)
			}
			rec := httptest.NewRecorder()

			handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			handler.ServeHTTP(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, rec.Code)
			}
		})
	}
}

func TestExtractIP_TrustedProxy(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "10.0.0.5:9999"
	req.Header.Set(HeaderForwardedFor, "203.0.113.7")

	// Untrusted remote: forwarded header must be ignored
	if ip := extractIP(req, nil); ip != "10.0.0.5" {
		t.Errorf("expected direct IP, got %q", ip)
	}

	// Trusted proxy: forwarded hop is honored
	if ip := extractIP(req, []string{"10.0.0.5"}); ip != "203.0.113.7" {
		t.Errorf("expected forwarded client IP, got %q", ip)
	}

	// Multiple hops: rightmost entry is the one that reached the proxy
	req.Header.Set(HeaderForwardedFor, "198.51.100.1, 203.0.113.7")
	if ip := extractIP(req, []string{"10.0.0.5"}); ip != "203.0.113.7" {
		t.Errorf("expected rightmost forwarded IP, got %q", ip)
	}
}
