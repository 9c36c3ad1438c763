package config

import (
	"log"
	"log/slog"
	"net"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/ulule/limiter/v3"
)

const (
	defaultPort                   = "8080"
	defaultBindAddress            = "127.0.0.1"
	defaultRateLimit              = "120-M"
	defaultSubmissionHistoryLimit = 100
)

// Config holds application configuration.
type Config struct {
	Port         string
	BindAddress  string // loopback unless explicitly overridden
	IsProduction bool
	LogLevel     slog.Level

	// AllowedOrigins lists origins allowed to call the JSON routes. Empty disables CORS.
	AllowedOrigins []string

	// RateLimit is a ulule formatted rate ("<limit>-<period>") applied per client IP to POST routes.
	RateLimit string

	// SubmissionHistoryLimit caps how many calculator submissions are kept in memory.
	SubmissionHistoryLimit int
}

// Addr returns the host:port the server listens on.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.BindAddress, c.Port)
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", defaultPort)
	v.SetDefault("BIND_ADDRESS", defaultBindAddress)
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("RATE_LIMIT", defaultRateLimit)
	v.SetDefault("SUBMISSION_HISTORY_LIMIT", defaultSubmissionHistoryLimit)

	v.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = defaultPort
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.BindAddress = strings.TrimSpace(v.GetString("BIND_ADDRESS"))
	if cfg.BindAddress == "" {
		cfg.BindAddress = defaultBindAddress
	} else if ip := net.ParseIP(cfg.BindAddress); ip != nil && !ip.IsLoopback() {
		log.Printf("Warning: BIND_ADDRESS %s is not a loopback address. The calculator will be reachable from the network.\n", cfg.BindAddress)
	}

	cfg.IsProduction = v.GetBool("IS_PRODUCTION")

	levelStr := v.GetString("LOG_LEVEL")
	if err := cfg.LogLevel.UnmarshalText([]byte(levelStr)); err != nil {
		cfg.LogLevel = slog.LevelInfo
		log.Printf("Warning: Invalid value for LOG_LEVEL ('%s'). Defaulting to %s.\n", levelStr, cfg.LogLevel.String())
	}

	for _, origin := range strings.Split(v.GetString("ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
		}
	}

	cfg.RateLimit = v.GetString("RATE_LIMIT")
	if _, err := limiter.NewRateFromFormatted(cfg.RateLimit); err != nil {
		log.Printf("Warning: Invalid value for RATE_LIMIT ('%s'). Defaulting to %s.\n", cfg.RateLimit, defaultRateLimit)
		cfg.RateLimit = defaultRateLimit
	}

	cfg.SubmissionHistoryLimit = v.GetInt("SUBMISSION_HISTORY_LIMIT")
	if cfg.SubmissionHistoryLimit <= 0 {
		log.Printf("Warning: Invalid value for SUBMISSION_HISTORY_LIMIT ('%s'). Defaulting to %d.\n", v.GetString("SUBMISSION_HISTORY_LIMIT"), defaultSubmissionHistoryLimit)
		cfg.SubmissionHistoryLimit = defaultSubmissionHistoryLimit
	}

	return cfg, nil
}
