package config

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/qudous44/tiktok-server/internal/domain"
)

func clearEnv() {
	envKeys := []string{
		"HTTP_ADDR", "TIKTOK_PIXEL_ID", "TIKTOK_ACCESS_TOKEN", "TIKTOK_ENDPOINTS",
		"TIKTOK_FAILOVER_ENABLED", "FORWARD_TIMEOUT", "SHOPIFY_WEBHOOK_SECRET",
		"DEFAULT_CURRENCY", "DEFAULT_PAGE_URL", "EVENT_TIMESTAMP_SOURCE",
		"SKIP_CANCELLED_ORDERS", "KAFKA_BROKERS", "DELIVERY_LOG_TOPIC",
		"ENVIRONMENT", "LOG_LEVEL",
	}
	for _, key := range envKeys {
		os.Unsetenv(key)
	}
}

func TestNew_defaults(t *testing.T) {
	clearEnv()

	cfg := New()

	tests := []struct {
		name string
		got  interface{}
		want interface{}
	}{
		{"HTTPAddr", cfg.HTTPAddr, ":8080"},
		{"PixelID", cfg.PixelID, ""},
		{"FailoverEnabled", cfg.FailoverEnabled, true},
		{"ForwardTimeout", cfg.ForwardTimeout, 12 * time.Second},
		{"DefaultCurrency", cfg.DefaultCurrency, "USD"},
		{"TimestampSource", cfg.TimestampSource, domain.TimestampSourceReceipt},
		{"SkipCancelledOrders", cfg.SkipCancelledOrders, true},
		{"Environment", cfg.Environment, "local"},
		{"LogLevel", cfg.LogLevel, "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Fatalf("got %v, want %v", tt.got, tt.want)
			}
		})
	}

	if len(cfg.Endpoints) != 2 {
		t.Fatalf("expected 2 default endpoints, got %v", cfg.Endpoints)
	}
	if cfg.MirrorEnabled() {
		t.Fatal("mirror should be disabled by default")
	}
}

func TestNew_fromEnvironment(t *testing.T) {
	clearEnv()
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("TIKTOK_PIXEL_ID", "px-1")
	t.Setenv("TIKTOK_ACCESS_TOKEN", "token-1")
	t.Setenv("SHOPIFY_WEBHOOK_SECRET", "hush")
	t.Setenv("TIKTOK_ENDPOINTS", "https://a.example/track, https://b.example/track")
	t.Setenv("TIKTOK_FAILOVER_ENABLED", "false")
	t.Setenv("FORWARD_TIMEOUT", "5")
	t.Setenv("KAFKA_BROKERS", "broker1:9092,broker2:9092")
	t.Setenv("DELIVERY_LOG_TOPIC", "conversion-deliveries")
	t.Setenv("ENVIRONMENT", "production")

	cfg := New()

	if cfg.HTTPAddr != ":9090" {
		t.Fatalf("expected :9090, got %s", cfg.HTTPAddr)
	}
	if cfg.PixelID != "px-1" || cfg.AccessToken != "token-1" || cfg.WebhookSecret != "hush" {
		t.Fatalf("credentials not read from environment: %+v", cfg)
	}
	if len(cfg.Endpoints) != 2 || cfg.Endpoints[1] != "https://b.example/track" {
		t.Fatalf("unexpected endpoints: %v", cfg.Endpoints)
	}
	if cfg.FailoverEnabled {
		t.Fatal("expected failover disabled")
	}
	if cfg.ForwardTimeout != 5*time.Second {
		t.Fatalf("expected 5s timeout, got %v", cfg.ForwardTimeout)
	}
	if !cfg.MirrorEnabled() {
		t.Fatal("expected mirror enabled")
	}
	if cfg.IsLocal() || !cfg.EnforceSignatures() || !cfg.OutboundEnabled() {
		t.Fatal("production must enforce signatures and send outbound calls")
	}
}

func TestConfig_localMode(t *testing.T) {
	clearEnv()

	cfg := New()

	if !cfg.IsLocal() {
		t.Fatal("expected local environment by default")
	}
	if cfg.EnforceSignatures() {
		t.Fatal("local mode must not enforce signatures")
	}
	if cfg.OutboundEnabled() {
		t.Fatal("local mode must not send outbound calls")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "complete config",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "missing pixel id",
			mutate:  func(c *Config) { c.PixelID = "" },
			wantErr: true,
		},
		{
			name:    "missing access token",
			mutate:  func(c *Config) { c.AccessToken = "" },
			wantErr: true,
		},
		{
			name:    "missing webhook secret",
			mutate:  func(c *Config) { c.WebhookSecret = "" },
			wantErr: true,
		},
		{
			name:    "no endpoints",
			mutate:  func(c *Config) { c.Endpoints = nil },
			wantErr: true,
		},
		{
			name:    "bad timestamp source",
			mutate:  func(c *Config) { c.TimestampSource = "sometime" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				PixelID:         "px",
				AccessToken:     "tok",
				WebhookSecret:   "hush",
				Endpoints:       []string{"https://a.example/track"},
				TimestampSource: domain.TimestampSourceReceipt,
			}
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				if !errors.Is(err, domain.ErrMissingConfig) {
					t.Fatalf("expected ErrMissingConfig, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestConfig_Presence(t *testing.T) {
	cfg := &Config{PixelID: "px", WebhookSecret: "hush"}

	presence := cfg.Presence()

	if !presence["pixel_id"] || presence["access_token"] || !presence["webhook_secret"] {
		t.Fatalf("unexpected presence map: %v", presence)
	}
	if len(presence) != 3 {
		t.Fatalf("expected 3 entries, got %v", presence)
	}
}
