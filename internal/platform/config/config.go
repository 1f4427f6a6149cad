// Package config loads and validates service configuration with koanf.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/jsamuelsen/chembond-tutor/internal/domain"
)

// Defaults that tests and callers may compare against.
const (
	DefaultServerPort       = 8080
	DefaultMaxRequestSize   = 1 << 20
	DefaultRequestTimeout   = 10 * time.Second
	DefaultCORSMaxAge       = 300
	DefaultLogFileMaxSizeMB = 100

	DefaultLogFileMaxBackups = 3
	DefaultLogFileMaxAgeDays = 28
)

const (
	envPrefix         = "APP_"
	databaseEnvPrefix = "DATABASE_"
)

// Config is the root configuration structure.
type Config struct {
	App       AppConfig       `koanf:"app"`
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	CORS      CORSConfig      `koanf:"cors"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Quiz      QuizConfig      `koanf:"quiz"`
	Database  DatabaseConfig  `koanf:"database"`
}

// AppConfig contains application-level settings.
type AppConfig struct {
	Name        string `koanf:"name"        validate:"required"`
	Version     string `koanf:"version"     validate:"required"`
	Environment string `koanf:"environment" validate:"required,oneof=local dev qa prod test"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"             validate:"required,min=1,max=65535"`
	Host            string        `koanf:"host"             validate:"required"`
	ReadTimeout     time.Duration `koanf:"read_timeout"     validate:"required,min=1s"`
	WriteTimeout    time.Duration `koanf:"write_timeout"    validate:"required,min=1s"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"     validate:"required,min=1s"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"required,min=1s"`
	RequestTimeout  time.Duration `koanf:"request_timeout"  validate:"required,min=100ms"`
	MaxRequestSize  int64         `koanf:"max_request_size" validate:"required,min=1"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string        `koanf:"level"  validate:"required,oneof=trace debug info warn error"`
	Format string        `koanf:"format" validate:"required,oneof=json text pretty"`
	File   LogFileConfig `koanf:"file"`
}

// LogFileConfig contains rolling log file settings.
type LogFileConfig struct {
	Enabled    bool   `koanf:"enabled"`
	Path       string `koanf:"path"        validate:"required_if=Enabled true"`
	MaxSizeMB  int    `koanf:"max_size"    validate:"omitempty,min=1,max=1024"`
	MaxBackups int    `koanf:"max_backups" validate:"omitempty,min=0,max=100"`
	MaxAgeDays int    `koanf:"max_age"     validate:"omitempty,min=0,max=365"`
	Compress   bool   `koanf:"compress"`
}

// TelemetryConfig contains OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled      bool    `koanf:"enabled"`
	Endpoint     string  `koanf:"endpoint"      validate:"required_if=Enabled true,omitempty,hostname_port"`
	Insecure     bool    `koanf:"insecure"`
	ServiceName  string  `koanf:"service_name"  validate:"required_if=Enabled true"`
	SamplingRate float64 `koanf:"sampling_rate" validate:"min=0,max=1"`
}

// CORSConfig controls cross-origin access for browser front-ends.
type CORSConfig struct {
	AllowedOrigins   []string `koanf:"allowed_origins"   validate:"required,min=1"`
	AllowedMethods   []string `koanf:"allowed_methods"   validate:"required,min=1"`
	AllowedHeaders   []string `koanf:"allowed_headers"`
	ExposedHeaders   []string `koanf:"exposed_headers"`
	AllowCredentials bool     `koanf:"allow_credentials"`
	MaxAge           int      `koanf:"max_age"           validate:"min=0"`
}

// CatalogConfig selects the knowledge base. An empty Path uses the
// catalog embedded in the binary.
type CatalogConfig struct {
	Path string `koanf:"path" validate:"omitempty,filepath"`
}

// QuizConfig contains quiz generation settings.
type QuizConfig struct {
	// DefaultCount is used when a request omits the count.
	DefaultCount int `koanf:"default_count" validate:"required,min=1,max=10"`

	// Seed makes quiz shuffling reproducible when non-zero.
	Seed uint64 `koanf:"seed"`
}

// DatabaseConfig holds the database settings reported by the legacy status
// endpoint. No component connects to the database.
type DatabaseConfig struct {
	URL  string `koanf:"url"`
	Name string `koanf:"name"`
}

// defaults returns the default configuration values.
func defaults() map[string]any {
	return map[string]any{
		"app.name":        "chembond-tutor",
		"app.version":     "dev",
		"app.environment": "local",

		"server.port":             DefaultServerPort,
		"server.host":             "0.0.0.0",
		"server.read_timeout":     "30s",
		"server.write_timeout":    "30s",
		"server.idle_timeout":     "120s",
		"server.shutdown_timeout": "10s",
		"server.request_timeout":  DefaultRequestTimeout.String(),
		"server.max_request_size": DefaultMaxRequestSize,

		"log.level":            "info",
		"log.format":           "json",
		"log.file.enabled":     false,
		"log.file.path":        "./logs/app.log",
		"log.file.max_size":    DefaultLogFileMaxSizeMB,
		"log.file.max_backups": DefaultLogFileMaxBackups,
		"log.file.max_age":     DefaultLogFileMaxAgeDays,
		"log.file.compress":    true,

		"telemetry.enabled":       false,
		"telemetry.endpoint":      "",
		"telemetry.insecure":      true,
		"telemetry.service_name":  "chembond-tutor",
		"telemetry.sampling_rate": 1.0,

		"cors.allowed_origins":   []string{"*"},
		"cors.allowed_methods":   []string{"GET", "POST", "OPTIONS"},
		"cors.allowed_headers":   []string{"*"},
		"cors.exposed_headers":   []string{"X-Request-ID", "X-Correlation-ID", "X-Trace-ID"},
		"cors.allow_credentials": false,
		"cors.max_age":           DefaultCORSMaxAge,

		"catalog.path": "",

		"quiz.default_count": domain.DefaultQuizCount,
		"quiz.seed":          0,

		"database.url":  "",
		"database.name": "",
	}
}

// Load merges configuration layers, later layers winning:
//
//	defaults
//	configs/base.yaml
//	configs/{profile}.yaml
//	DATABASE_URL, DATABASE_NAME and PORT
//	APP_* variables
//
// Missing files are skipped. The result is not validated; call Validate.
func Load(profile string) (*Config, error) {
	k := koanf.New(".")
	defs := defaults()

	layers := []struct {
		name string
		load func() error
	}{
		{"defaults", func() error { return k.Load(confmap.Provider(defs, "."), nil) }},
		{"base config", func() error { return loadFileIfExists(k, "configs/base.yaml") }},
		{"profile config " + strconv.Quote(profile), func() error {
			if profile == "" {
				return nil
			}

			return loadFileIfExists(k, "configs/"+profile+".yaml")
		}},
		{"database env vars", func() error {
			return k.Load(env.Provider(databaseEnvPrefix, ".", func(s string) string {
				return "database." + strings.ToLower(strings.TrimPrefix(s, databaseEnvPrefix))
			}), nil)
		}},
		{"PORT", func() error {
			if port, ok := os.LookupEnv("PORT"); ok && port != "" {
				return k.Set("server.port", port)
			}

			return nil
		}},
		{"env vars", func() error { return k.Load(env.ProviderWithValue(envPrefix, ".", envMapper(defs)), nil) }},
	}

	for _, layer := range layers {
		if err := layer.load(); err != nil {
			return nil, fmt.Errorf("loading %s: %w", layer.name, err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return &cfg, nil
}

// envKeyMapper maps APP_ variables onto config keys. Known keys are matched
// exactly so names like APP_SERVER_READ_TIMEOUT reach server.read_timeout;
// anything else has every underscore turned into a dot.
func envKeyMapper(known map[string]any) func(string) string {
	byEnv := make(map[string]string, len(known))
	for key := range known {
		byEnv[envPrefix+strings.ToUpper(strings.ReplaceAll(key, ".", "_"))] = key
	}

	return func(s string) string {
		if key, ok := byEnv[strings.ToUpper(s)]; ok {
			return key
		}

		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, envPrefix)),
			"_",
			".",
		)
	}
}

// envMapper maps an APP_ variable onto its config key. Values of keys whose
// default is a list are split on commas.
func envMapper(known map[string]any) func(key, value string) (string, any) {
	keyFor := envKeyMapper(known)

	return func(envKey, value string) (string, any) {
		key := keyFor(envKey)
		if _, isList := known[key].([]string); isList {
			return key, splitList(value)
		}

		return key, value
	}
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")

	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			items = append(items, p)
		}
	}

	return items
}

func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return k.Load(file.Provider(path), yaml.Parser())
}
