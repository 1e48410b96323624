package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	env "github.com/Netflix/go-env"
	"github.com/samber/lo"
)

// DefaultStoreURL is used when no store connection string is configured.
const DefaultStoreURL = "mongodb://localhost:27017/site-pessoal"

// StoreDriver names the backend selected by the store URL scheme.
type StoreDriver string

const (
	StoreDriverPostgres StoreDriver = "postgres"
	StoreDriverMongo    StoreDriver = "mongodb"
)

var defaultMongodPaths = []string{
	`C:\Program Files\MongoDB\Server\7.0\bin\mongod.exe`,
	`C:\Program Files\MongoDB\Server\6.0\bin\mongod.exe`,
	`C:\Program Files\MongoDB\Server\5.0\bin\mongod.exe`,
	`C:\Program Files (x86)\MongoDB\Server\7.0\bin\mongod.exe`,
	`C:\Program Files (x86)\MongoDB\Server\6.0\bin\mongod.exe`,
	"/usr/bin/mongod",
	"/usr/local/bin/mongod",
	"/opt/homebrew/bin/mongod",
}

// RateLimitConfig indicates how many requests are allowed within a given interval.
// The zero value disables limiting.
type RateLimitConfig struct {
	Requests int
	Interval time.Duration
}

// MailConfig describes the outbound notification transport.
type MailConfig struct {
	User      string
	Password  string
	Recipient string
	Host      string
	Port      int
	Timeout   time.Duration
	TimeZone  string
}

// Enabled reports whether credentials are present.
func (m MailConfig) Enabled() bool {
	return m.User != "" && m.Password != ""
}

// Config aggregates application-wide configuration values.
type Config struct {
	Port                string
	StoreURL            string
	StoreDriver         StoreDriver
	StoreRetryInterval  time.Duration
	StoreConnectTimeout time.Duration
	StartStoreProcess   bool
	MongodPaths         []string
	Mail                MailConfig
	RateLimitContact    RateLimitConfig
	CORSAllowOrigins    []string
	BodyLimit           string
	LogLevel            string
	LogFormat           string
}

type environment struct {
	Port                string        `env:"PORT,default=3000"`
	StoreURL            string        `env:"STORE_URL"`
	DatabaseURL         string        `env:"DATABASE_URL"`
	MongoURI            string        `env:"MONGODB_URI"`
	StoreRetryInterval  time.Duration `env:"STORE_RETRY_INTERVAL,default=5s"`
	StoreConnectTimeout time.Duration `env:"STORE_CONNECT_TIMEOUT,default=10s"`
	StartStoreProcess   bool          `env:"STORE_START_PROCESS,default=false"`
	MongodPaths         string        `env:"MONGOD_PATHS"`
	EmailUser           string        `env:"EMAIL_USER"`
	EmailPass           string        `env:"EMAIL_PASS"`
	ReceivingEmail      string        `env:"RECEIVING_EMAIL"`
	SMTPHost            string        `env:"SMTP_HOST,default=smtp.office365.com"`
	SMTPPort            int           `env:"SMTP_PORT,default=587"`
	MailTimeout         time.Duration `env:"MAIL_TIMEOUT,default=30s"`
	NotifyTimeZone      string        `env:"NOTIFY_TIMEZONE,default=America/Sao_Paulo"`
	RateLimitContact    string        `env:"RATE_LIMIT_CONTACT"`
	CORSAllowOrigins    string        `env:"CORS_ALLOW_ORIGINS,default=*"`
	BodyLimit           string        `env:"BODY_LIMIT,default=100K"`
	LogLevel            string        `env:"LOG_LEVEL,default=info"`
	LogFormat           string        `env:"LOG_FORMAT,default=json"`
}

// Load reads configuration from environment variables and applies sane defaults.
func Load() (*Config, error) {
	var raw environment
	if _, err := env.UnmarshalFromEnviron(&raw); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	storeURL, _ := lo.Coalesce(
		strings.TrimSpace(raw.StoreURL),
		strings.TrimSpace(raw.DatabaseURL),
		strings.TrimSpace(raw.MongoURI),
		DefaultStoreURL,
	)
	driver, err := ParseStoreDriver(storeURL)
	if err != nil {
		return nil, fmt.Errorf("invalid store url: %w", err)
	}

	rl, err := parseRateLimit(raw.RateLimitContact)
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_CONTACT value: %w", err)
	}

	if raw.StoreRetryInterval <= 0 {
		return nil, fmt.Errorf("STORE_RETRY_INTERVAL must be positive, got %s", raw.StoreRetryInterval)
	}

	mongodPaths := splitList(raw.MongodPaths)
	if len(mongodPaths) == 0 {
		mongodPaths = defaultMongodPaths
	}

	user := strings.TrimSpace(raw.EmailUser)
	recipient, _ := lo.Coalesce(strings.TrimSpace(raw.ReceivingEmail), user)

	cfg := &Config{
		Port:                raw.Port,
		StoreURL:            storeURL,
		StoreDriver:         driver,
		StoreRetryInterval:  raw.StoreRetryInterval,
		StoreConnectTimeout: raw.StoreConnectTimeout,
		StartStoreProcess:   raw.StartStoreProcess,
		MongodPaths:         mongodPaths,
		Mail: MailConfig{
			User:      user,
			Password:  raw.EmailPass,
			Recipient: recipient,
			Host:      raw.SMTPHost,
			Port:      raw.SMTPPort,
			Timeout:   raw.MailTimeout,
			TimeZone:  raw.NotifyTimeZone,
		},
		RateLimitContact: rl,
		CORSAllowOrigins: splitList(raw.CORSAllowOrigins),
		BodyLimit:        raw.BodyLimit,
		LogLevel:         raw.LogLevel,
		LogFormat:        raw.LogFormat,
	}

	return cfg, nil
}

// ParseStoreDriver maps a connection string to the backend that serves it.
func ParseStoreDriver(storeURL string) (StoreDriver, error) {
	u, err := url.Parse(storeURL)
	if err != nil {
		return "", err
	}
	switch strings.ToLower(u.Scheme) {
	case "postgres", "postgresql":
		return StoreDriverPostgres, nil
	case "mongodb", "mongodb+srv":
		return StoreDriverMongo, nil
	default:
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
}

func parseRateLimit(value string) (RateLimitConfig, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return RateLimitConfig{}, nil
	}

	parts := strings.Split(value, "/")
	if len(parts) != 2 {
		return RateLimitConfig{}, fmt.Errorf("expected format <requests>/<interval>, got %q", value)
	}

	requests, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || requests <= 0 {
		return RateLimitConfig{}, fmt.Errorf("invalid request count: %v", parts[0])
	}

	unit := strings.ToLower(strings.TrimSpace(parts[1]))
	var interval time.Duration
	switch unit {
	case "s", "sec", "second", "seconds":
		interval = time.Second
	case "m", "min", "minute", "minutes":
		interval = time.Minute
	case "h", "hr", "hour", "hours":
		interval = time.Hour
	default:
		return RateLimitConfig{}, fmt.Errorf("unsupported interval unit: %s", unit)
	}

	return RateLimitConfig{Requests: requests, Interval: interval}, nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
