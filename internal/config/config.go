// Package config assembles the application configuration from the process
// environment (optionally seeded from a .env file) into one explicit struct
// that main hands to every component.
package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	envcfg "agency-articles/pkg/config"
)

// Required database environment variables. They have no defaults.
const (
	EnvDBUser     = "DB_USER"
	EnvDBPassword = "DB_PASSWORD"
	EnvDBHost     = "DB_HOST"
	EnvDBPort     = "DB_PORT"
	EnvDBService  = "DB_SERVICE"
)

// Config is the full runtime configuration.
type Config struct {
	Database      Database
	HTTP          HTTP
	API           API
	Observability Observability
}

// Database describes how to reach the article database and how large the
// connection pool may grow.
type Database struct {
	User     string
	Password string
	Host     string
	Port     int
	// Service is the database name on the server.
	Service string
	SSLMode string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	// ConnectTimeout bounds the startup ping, retries included.
	ConnectTimeout time.Duration
}

// HTTP holds listener and middleware settings.
type HTTP struct {
	Addr              string
	ReadHeaderTimeout time.Duration
	// RequestTimeout bounds every API request, database round trip included.
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	MaxBodyBytes    int64
	// RateLimitRPS is the per-client token refill rate. Zero disables limiting.
	RateLimitRPS   float64
	RateLimitBurst int
	// CORSAllowedOrigins lists browser origins allowed to call the API.
	// Empty disables CORS headers; "*" allows any origin.
	CORSAllowedOrigins []string
	CSPEnabled         bool
}

// API holds response-shaping switches.
type API struct {
	// LegacyErrorStatus answers every failure with 500, as the first version of
	// the service did, instead of the per-kind status mapping.
	LegacyErrorStatus bool
}

type Observability struct {
	LogLevel string
	// LogFormat is "json" or "text".
	LogFormat      string
	ServiceName    string
	Version        string
	TracingEnabled bool
	// TracesExporter is "stdout" or "none". With "none" spans are still
	// created so trace ids reach logs and the X-Trace-Id header.
	TracesExporter string
}

// DSN renders the database settings as a pgx connection URL.
// The password is escaped so any character is accepted.
func (d Database) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:   "/" + d.Service,
	}
	q := url.Values{}
	if d.SSLMode != "" {
		q.Set("sslmode", d.SSLMode)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// Load reads .env (when present) and then the environment.
// Variables already set in the environment win over .env entries.
func Load(dotenvPaths ...string) (*Config, error) {
	if err := loadDotEnv(dotenvPaths...); err != nil {
		return nil, err
	}
	return LoadFromEnv()
}

// LoadFromEnv builds a Config from the current environment and validates it.
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Database: Database{
			User:            strings.TrimSpace(os.Getenv(EnvDBUser)),
			Password:        os.Getenv(EnvDBPassword),
			Host:            strings.TrimSpace(os.Getenv(EnvDBHost)),
			Service:         strings.TrimSpace(os.Getenv(EnvDBService)),
			SSLMode:         envcfg.GetEnvString("DB_SSLMODE", "disable"),
			MaxOpenConns:    envcfg.GetEnvInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envcfg.GetEnvInt("DB_MAX_IDLE_CONNS", 10),
			ConnMaxLifetime: envcfg.GetEnvDuration("DB_CONN_MAX_LIFETIME", time.Hour),
			ConnMaxIdleTime: envcfg.GetEnvDuration("DB_CONN_MAX_IDLE_TIME", 30*time.Minute),
			ConnectTimeout:  envcfg.GetEnvDuration("DB_CONNECT_TIMEOUT", 15*time.Second),
		},
		HTTP: HTTP{
			Addr:               envcfg.GetEnvString("HTTP_ADDR", ":8080"),
			ReadHeaderTimeout:  envcfg.GetEnvDuration("HTTP_READ_HEADER_TIMEOUT", 10*time.Second),
			RequestTimeout:     envcfg.GetEnvDuration("HTTP_REQUEST_TIMEOUT", 10*time.Second),
			ShutdownTimeout:    envcfg.GetEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 5*time.Second),
			MaxBodyBytes:       int64(envcfg.GetEnvInt("HTTP_MAX_BODY_BYTES", 1<<20)),
			RateLimitRPS:       envcfg.GetEnvFloat("RATE_LIMIT_RPS", 0),
			RateLimitBurst:     envcfg.GetEnvInt("RATE_LIMIT_BURST", 20),
			CORSAllowedOrigins: envcfg.GetEnvStringSlice("CORS_ALLOWED_ORIGINS", nil),
			CSPEnabled:         envcfg.GetEnvBool("CSP_ENABLED", true),
		},
		API: API{
			LegacyErrorStatus: envcfg.GetEnvBool("API_LEGACY_ERROR_STATUS", false),
		},
		Observability: Observability{
			LogLevel:       envcfg.GetEnvString("LOG_LEVEL", "info"),
			LogFormat:      strings.ToLower(envcfg.GetEnvString("LOG_FORMAT", "json")),
			ServiceName:    envcfg.GetEnvString("SERVICE_NAME", "agency-articles"),
			Version:        envcfg.GetEnvString("VERSION", "dev"),
			TracingEnabled: envcfg.GetEnvBool("OTEL_TRACING_ENABLED", false),
			TracesExporter: strings.ToLower(envcfg.GetEnvString("OTEL_TRACES_EXPORTER", "none")),
		},
	}

	var missing []string
	for _, key := range []string{EnvDBUser, EnvDBPassword, EnvDBHost, EnvDBPort, EnvDBService} {
		if strings.TrimSpace(os.Getenv(key)) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	port, err := strconv.Atoi(strings.TrimSpace(os.Getenv(EnvDBPort)))
	if err != nil || port < 1 || port > 65535 {
		return nil, fmt.Errorf("%s must be a port number between 1 and 65535", EnvDBPort)
	}
	cfg.Database.Port = port

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks the optional settings once defaults have been applied.
func (c *Config) Validate() error {
	if c.Database.MaxOpenConns <= 0 {
		return errors.New("DB_MAX_OPEN_CONNS must be positive")
	}
	if c.Database.MaxIdleConns < 0 || c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		return errors.New("DB_MAX_IDLE_CONNS must be between 0 and DB_MAX_OPEN_CONNS")
	}
	if err := envcfg.ValidatePositiveDuration("DB_CONNECT_TIMEOUT", c.Database.ConnectTimeout); err != nil {
		return err
	}
	if err := envcfg.ValidatePositiveDuration("HTTP_REQUEST_TIMEOUT", c.HTTP.RequestTimeout); err != nil {
		return err
	}
	if err := envcfg.ValidatePositiveDuration("HTTP_SHUTDOWN_TIMEOUT", c.HTTP.ShutdownTimeout); err != nil {
		return err
	}
	if c.HTTP.MaxBodyBytes <= 0 {
		return errors.New("HTTP_MAX_BODY_BYTES must be positive")
	}
	if c.HTTP.RateLimitRPS < 0 {
		return errors.New("RATE_LIMIT_RPS cannot be negative")
	}
	if c.HTTP.RateLimitRPS > 0 && c.HTTP.RateLimitBurst <= 0 {
		return errors.New("RATE_LIMIT_BURST must be positive when rate limiting is enabled")
	}
	for _, o := range c.HTTP.CORSAllowedOrigins {
		if o == "*" {
			continue
		}
		if u, err := url.Parse(o); err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("CORS_ALLOWED_ORIGINS entry %q must be an origin such as https://example.com", o)
		}
	}
	switch c.Observability.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or text, got %q", c.Observability.LogFormat)
	}
	switch c.Observability.TracesExporter {
	case "none", "stdout":
	default:
		return fmt.Errorf("OTEL_TRACES_EXPORTER must be none or stdout, got %q", c.Observability.TracesExporter)
	}
	return nil
}

func loadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return fmt.Errorf("stat %s: %w", p, err)
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}
