package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the overall application configuration.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Session SessionConfig `yaml:"session"`
	Storage StorageConfig `yaml:"storage"`
	Feed    FeedConfig    `yaml:"feed"`
	Relay   RelayConfig   `yaml:"relay"`
	Server  ServerConfig  `yaml:"server"`
}

// APIConfig holds the connection settings for the remote portal API.
type APIConfig struct {
	BaseURL         string            `yaml:"base_url"`
	TimeoutSeconds  int               `yaml:"timeout_seconds"`
	Timeout         time.Duration     `yaml:"-"` // Ignored by YAML parser
	HTTPProxy       string            `yaml:"http_proxy"`
	Headers         map[string]string `yaml:"headers"`
	RateLimitPerSec float64           `yaml:"rate_limit_per_sec"`
	RateLimitBurst  int               `yaml:"rate_limit_burst"`
}

// SessionConfig controls where the session snapshot is persisted between runs.
type SessionConfig struct {
	File string `yaml:"file"`
}

// StorageConfig selects the request storage backend. "remote" submits to the
// portal API; "local" keeps requests in a database of its own (sqlite file by
// default, postgres when the DSN looks like one).
type StorageConfig struct {
	Backend                string `yaml:"backend"`
	DSN                    string `yaml:"dsn"`
	MaxOpenConns           int    `yaml:"max_open_conns"`
	MaxIdleConns           int    `yaml:"max_idle_conns"`
	ConnMaxLifetimeMinutes int    `yaml:"conn_max_lifetime_minutes"`
}

// FeedConfig tunes the aggregated feed cache.
type FeedConfig struct {
	CacheTTLSeconds int `yaml:"cache_ttl_seconds"`
}

// RelayConfig configures the outbound notification relay.
type RelayConfig struct {
	Enabled bool `yaml:"enabled"`
	// Channel is "whatsapp" (wa.me deep link opened in a browser) or
	// "webpush" (Web Push to a staff subscription).
	Channel string            `yaml:"channel"`
	Workers int               `yaml:"workers"`
	Numbers map[string]string `yaml:"numbers"`
	Push    PushConfig        `yaml:"push"`
}

// PushConfig holds the VAPID keys and target subscription for the webpush
// relay channel.
type PushConfig struct {
	Endpoint   string `yaml:"endpoint"`
	P256DH     string `yaml:"p256dh"`
	Auth       string `yaml:"auth"`
	PublicKey  string `yaml:"vapid_public_key"`
	PrivateKey string `yaml:"vapid_private_key"`
	Subject    string `yaml:"subject"`
	TTL        int    `yaml:"ttl"`
}

// ServerConfig holds settings for the local dashboard facade (portalctl serve).
type ServerConfig struct {
	Port            int     `yaml:"port"`
	RateLimitPerSec float64 `yaml:"rate_limit_per_sec"`
	CacheTTLSeconds int     `yaml:"cache_ttl_seconds"`
}

// DefaultRelayNumber is the portal's shared office WhatsApp line, used for
// any kind without an explicit entry in relay.numbers.
const DefaultRelayNumber = "+919380126330"

// Load reads the configuration from the given path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = "http://localhost:5001/api"
	}
	if cfg.API.TimeoutSeconds <= 0 {
		cfg.API.TimeoutSeconds = 30
	}
	cfg.API.Timeout = time.Duration(cfg.API.TimeoutSeconds) * time.Second

	if cfg.API.RateLimitPerSec <= 0 {
		cfg.API.RateLimitPerSec = 10
	}
	if cfg.API.RateLimitBurst <= 0 {
		cfg.API.RateLimitBurst = 6
	}

	if cfg.Session.File == "" {
		cfg.Session.File = ".portal-session.json"
	}

	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = "remote"
	}
	if cfg.Storage.Backend == "local" && cfg.Storage.DSN == "" {
		cfg.Storage.DSN = "portal.db"
	}

	if cfg.Feed.CacheTTLSeconds <= 0 {
		cfg.Feed.CacheTTLSeconds = 300
	}

	if cfg.Relay.Channel == "" {
		cfg.Relay.Channel = "whatsapp"
	}
	if cfg.Relay.Workers <= 0 {
		log.Printf("relay.workers is not set or invalid; defaulting to 1")
		cfg.Relay.Workers = 1
	}
	if cfg.Relay.Push.TTL <= 0 {
		cfg.Relay.Push.TTL = 3600
	}

	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.RateLimitPerSec <= 0 {
		cfg.Server.RateLimitPerSec = 10
	}
	if cfg.Server.CacheTTLSeconds <= 0 {
		cfg.Server.CacheTTLSeconds = 60
	}

	return &cfg, nil
}
