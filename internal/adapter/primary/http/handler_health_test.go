package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/qudous44/tiktok-server/internal/config"
	"github.com/qudous44/tiktok-server/internal/port/secondary"
)

func TestHealthHandler_ServeHTTP(t *testing.T) {
	cfg := &config.Config{PixelID: "px", AccessToken: "tok"}

	tests := []struct {
		name           string
		checks         []secondary.HealthChecker
		wantStatusCode int
		wantStatus     string
	}{
		{
			name:           "healthy with no checks",
			checks:         nil,
			wantStatusCode: http.StatusOK,
			wantStatus:     "healthy",
		},
		{
			name:           "healthy with passing check",
			checks:         []secondary.HealthChecker{mockHealthCheck{name: "kafka"}},
			wantStatusCode: http.StatusOK,
			wantStatus:     "healthy",
		},
		{
			name:           "unhealthy with failing check",
			checks:         []secondary.HealthChecker{mockHealthCheck{name: "kafka", err: errors.New("connection refused")}},
			wantStatusCode: http.StatusServiceUnavailable,
			wantStatus:     "unhealthy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHealthHandler(cfg, tt.checks)

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Fatalf("expected status %d, got %d", tt.wantStatusCode, rec.Code)
			}

			var resp HealthResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Status != tt.wantStatus {
				t.Fatalf("expected status %q, got %q", tt.wantStatus, resp.Status)
			}
			if !resp.Config["pixel_id"] || !resp.Config["access_token"] || resp.Config["webhook_secret"] {
				t.Fatalf("unexpected config presence: %v", resp.Config)
			}
		})
	}
}

func TestHealthHandler_neverLeaksConfigValues(t *testing.T) {
	cfg := &config.Config{
		PixelID:       "pixel-value-1234",
		AccessToken:   "token-value-5678",
		WebhookSecret: "secret-value-9012",
	}
	handler := NewHealthHandler(cfg, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	body := rec.Body.String()
	for _, value := range []string{"pixel-value-1234", "token-value-5678", "secret-value-9012"} {
		if strings.Contains(body, value) {
			t.Fatalf("health response leaked %q: %s", value, body)
		}
	}
}

func TestIndexHandler_ServeHTTP(t *testing.T) {
	handler := NewIndexHandler()

	t.Run("root lists routes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		var resp RoutesResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.Service != "tiktok-server" || len(resp.Routes) == 0 {
			t.Fatalf("unexpected routes response: %+v", resp)
		}
	})

	t.Run("unknown path is 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/nope", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}
