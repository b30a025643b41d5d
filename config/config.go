// Package config defines the environment variable and command-line flags
// supported by this service and includes default values for particular
// fields.
package config

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/companieshouse/gofigure"
)

var cfg *Config
var mtx sync.Mutex

// Session store backends recognised by SESSION_STORE
const (
	MemorySessionStore = "memory"
	MongoSessionStore  = "mongo"
)

// Config defines the configuration options for this service.
type Config struct {
	BindAddr                  string   `env:"BIND_ADDR"                   flag:"bind-addr"                   flagDesc:"Bind address"`
	ServerBaseURL             string   `env:"SERVER_BASE_URL"             flag:"server-base-url"             flagDesc:"Base URL of the payment coordination server"`
	CoordinatorTimeoutSeconds string   `env:"COORDINATOR_TIMEOUT_SECONDS" flag:"coordinator-timeout-seconds" flagDesc:"Timeout for calls to the coordination server, 0 for none"`
	SessionStore              string   `env:"SESSION_STORE"               flag:"session-store"               flagDesc:"Session store backend: memory or mongo"`
	SessionCookieName         string   `env:"SESSION_COOKIE_NAME"         flag:"session-cookie-name"         flagDesc:"Name of the browser session cookie"`
	SessionExpiryMinutes      string   `env:"SESSION_EXPIRY_MINUTES"      flag:"session-expiry-minutes"      flagDesc:"Lifetime of a payment session in minutes"`
	CookieSecure              bool     `env:"COOKIE_SECURE"               flag:"cookie-secure"               flagDesc:"Only send the session cookie over HTTPS"`
	MongoDBURL                string   `env:"MONGODB_URL"                 flag:"mongodb-url"                 flagDesc:"MongoDB server URL"`
	Database                  string   `env:"MONGODB_DATABASE"            flag:"mongodb-database"            flagDesc:"MongoDB database for data"`
	Collection                string   `env:"MONGODB_COLLECTION"          flag:"mongodb-collection"          flagDesc:"MongoDB collection for payment sessions"`
	BrokerAddr                []string `env:"KAFKA_BROKER_ADDR"           flag:"broker-addr"                 flagDesc:"Kafka broker address, empty disables events"`
	SchemaRegistryURL         string   `env:"SCHEMA_REGISTRY_URL"         flag:"schema-registry-url"         flagDesc:"Schema registry url"`
}

// DefaultConfig returns a pointer to a Config instance that has been populated
// with default values.
func DefaultConfig() *Config {
	return &Config{
		BindAddr:                  ":3001",
		ServerBaseURL:             "http://localhost:3000",
		CoordinatorTimeoutSeconds: "0",
		SessionStore:              MemorySessionStore,
		SessionCookieName:         "payment_session",
		SessionExpiryMinutes:      "60",
		Database:                  "payments",
		Collection:                "payment_sessions",
	}
}

// Get returns a pointer to a Config instance that has been populated with
// values provided by the environment or command-line flags, or with default
// values if none are provided.
func Get() (*Config, error) {
	mtx.Lock()
	defer mtx.Unlock()

	if cfg != nil {
		return cfg, nil
	}

	cfg = DefaultConfig()

	err := gofigure.Gofigure(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// SessionExpiry returns the configured session lifetime.
func (c *Config) SessionExpiry() (time.Duration, error) {
	minutes, err := strconv.Atoi(c.SessionExpiryMinutes)
	if err != nil {
		return 0, fmt.Errorf("error parsing session expiry minutes: [%v]", err)
	}
	if minutes <= 0 {
		return 0, fmt.Errorf("session expiry minutes must be positive, got [%d]", minutes)
	}
	return time.Duration(minutes) * time.Minute, nil
}

// CoordinatorTimeout returns the timeout applied to coordinator calls. Zero
// means no client timeout.
func (c *Config) CoordinatorTimeout() (time.Duration, error) {
	seconds, err := strconv.Atoi(c.CoordinatorTimeoutSeconds)
	if err != nil {
		return 0, fmt.Errorf("error parsing coordinator timeout seconds: [%v]", err)
	}
	if seconds < 0 {
		return 0, fmt.Errorf("coordinator timeout seconds must not be negative, got [%d]", seconds)
	}
	return time.Duration(seconds) * time.Second, nil
}

// EventsEnabled reports whether payment events should be produced to Kafka.
func (c *Config) EventsEnabled() bool {
	return len(c.BrokerAddr) > 0
}
