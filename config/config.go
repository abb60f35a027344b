package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Mapping layer
	Schema SchemaConfig

	// Inspection API limits
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type SchemaConfig struct {
	// EnumPolicy is "lenient" or "strict".
	EnumPolicy string
}

type RateLimitConfig struct {
	PerMin    int
	CacheSize int
	TTL       time.Duration
}

// Load loads configuration using Viper.
// A .env file in the working directory is applied to the process
// environment first. Config file name: config.yaml, searched in ./config,
// . and /etc/app/.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	cfg.Schema.EnumPolicy = strings.ToLower(strings.TrimSpace(v.GetString("schema.enum_policy")))
	switch cfg.Schema.EnumPolicy {
	case "lenient", "strict":
	default:
		return nil, fmt.Errorf("invalid schema.enum_policy %q: want lenient or strict", cfg.Schema.EnumPolicy)
	}

	cfg.RateLimit.PerMin = v.GetInt("rate_limit.per_min")
	cfg.RateLimit.CacheSize = v.GetInt("rate_limit.cache_size")
	cfg.RateLimit.TTL = v.GetDuration("rate_limit.ttl")
	if cfg.RateLimit.CacheSize <= 0 {
		return nil, fmt.Errorf("invalid rate_limit.cache_size %d", cfg.RateLimit.CacheSize)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("schema.enum_policy", "lenient")

	// per_min 0 disables the limiter
	v.SetDefault("rate_limit.per_min", 120)
	v.SetDefault("rate_limit.cache_size", 1000)
	v.SetDefault("rate_limit.ttl", 5*time.Minute)
}
