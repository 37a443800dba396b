package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/qudous44/tiktok-server/internal/domain"
)

// Default candidate endpoints for the events API, tried in order when
// failover is enabled.
var defaultEndpoints = []string{
	"https://business-api.tiktok.com/open_api/v1.2/pixel/track/",
	"https://ads.tiktok.com/open_api/v1.2/pixel/track/",
}

// Config holds all application configuration values, read once at startup and
// injected into components. Business logic never reads the environment.
type Config struct {
	// HTTP server
	HTTPAddr string

	// Events API
	PixelID         string
	AccessToken     string
	Endpoints       []string
	FailoverEnabled bool
	ForwardTimeout  time.Duration

	// Webhook authenticity
	WebhookSecret string

	// Event construction
	DefaultCurrency string
	DefaultPageURL  string
	TimestampSource string // "receipt" (default) or "order"

	// Filtering policy
	SkipCancelledOrders bool

	// Delivery-record mirror (disabled unless both are set)
	KafkaBrokers     []string
	DeliveryLogTopic string

	// Application
	Environment string
	LogLevel    string
}

// New creates a Config populated from environment variables with sensible
// defaults for everything except the credentials, which Validate checks.
func New() *Config {
	cfg := &Config{
		HTTPAddr:            getEnv("HTTP_ADDR", ":8080"),
		PixelID:             getEnv("TIKTOK_PIXEL_ID", ""),
		AccessToken:         getEnv("TIKTOK_ACCESS_TOKEN", ""),
		Endpoints:           defaultEndpoints,
		FailoverEnabled:     getEnvBool("TIKTOK_FAILOVER_ENABLED", true),
		ForwardTimeout:      domain.DefaultForwardTimeout,
		WebhookSecret:       getEnv("SHOPIFY_WEBHOOK_SECRET", ""),
		DefaultCurrency:     getEnv("DEFAULT_CURRENCY", "USD"),
		DefaultPageURL:      getEnv("DEFAULT_PAGE_URL", ""),
		TimestampSource:     getEnv("EVENT_TIMESTAMP_SOURCE", domain.TimestampSourceReceipt),
		SkipCancelledOrders: getEnvBool("SKIP_CANCELLED_ORDERS", true),
		DeliveryLogTopic:    getEnv("DELIVERY_LOG_TOPIC", ""),
		Environment:         getEnv("ENVIRONMENT", "local"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
	}

	if v := getEnv("TIKTOK_ENDPOINTS", ""); v != "" {
		cfg.Endpoints = splitList(v)
	}
	if v := getEnv("KAFKA_BROKERS", ""); v != "" {
		cfg.KafkaBrokers = splitList(v)
	}
	if v := getEnv("FORWARD_TIMEOUT", ""); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.ForwardTimeout = time.Duration(secs) * time.Second
		}
	}

	return cfg
}

// IsLocal reports whether the process runs in the explicit local mode that
// skips signature enforcement and outbound delivery.
func (c *Config) IsLocal() bool {
	return c.Environment == "local"
}

// EnforceSignatures reports whether webhook signatures are mandatory.
func (c *Config) EnforceSignatures() bool {
	return !c.IsLocal()
}

// OutboundEnabled reports whether forwarded events actually leave the process.
func (c *Config) OutboundEnabled() bool {
	return !c.IsLocal()
}

// MirrorEnabled reports whether delivery records are published to Kafka.
func (c *Config) MirrorEnabled() bool {
	return len(c.KafkaBrokers) > 0 && c.DeliveryLogTopic != ""
}

// Validate checks that every required value is present. The caller treats a
// failure as fatal outside local mode.
func (c *Config) Validate() error {
	var missing []string
	if c.PixelID == "" {
		missing = append(missing, "TIKTOK_PIXEL_ID")
	}
	if c.AccessToken == "" {
		missing = append(missing, "TIKTOK_ACCESS_TOKEN")
	}
	if c.WebhookSecret == "" {
		missing = append(missing, "SHOPIFY_WEBHOOK_SECRET")
	}
	if len(c.Endpoints) == 0 {
		missing = append(missing, "TIKTOK_ENDPOINTS")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrMissingConfig, strings.Join(missing, ", "))
	}
	if c.TimestampSource != domain.TimestampSourceReceipt && c.TimestampSource != domain.TimestampSourceOrder {
		return fmt.Errorf("%w: EVENT_TIMESTAMP_SOURCE must be %q or %q",
			domain.ErrMissingConfig, domain.TimestampSourceReceipt, domain.TimestampSourceOrder)
	}
	return nil
}

// Presence reports which required values are set, for the health endpoint.
// Values themselves are never exposed.
func (c *Config) Presence() map[string]bool {
	return map[string]bool{
		"pixel_id":       c.PixelID != "",
		"access_token":   c.AccessToken != "",
		"webhook_secret": c.WebhookSecret != "",
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
