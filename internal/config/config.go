// Package config loads service settings from defaults, an optional
// config.yaml, a .env file and MEDIEXPLAIN_* environment variables, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"mediexplain/internal/storage"
)

const EnvPrefix = "MEDIEXPLAIN"

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Backend   BackendConfig   `mapstructure:"backend"`
	Knowledge KnowledgeConfig `mapstructure:"knowledge"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Speech    SpeechConfig    `mapstructure:"speech"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Addr           string   `mapstructure:"addr"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type BackendConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type KnowledgeConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

type StorageConfig struct {
	Driver    string `mapstructure:"driver"`
	Path      string `mapstructure:"path"`
	RedisURL  string `mapstructure:"redis_url"`
	Namespace string `mapstructure:"namespace"`
}

type AuthConfig struct {
	JWTSecret  string        `mapstructure:"jwt_secret"`
	TokenTTL   time.Duration `mapstructure:"token_ttl"`
	LoginDelay time.Duration `mapstructure:"login_delay"`
}

type SpeechConfig struct {
	Enabled         bool   `mapstructure:"enabled"`
	CredentialsFile string `mapstructure:"credentials_file"`
}

type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// StorageOptions converts the storage section for storage.Open.
func (c *Config) StorageOptions() storage.Options {
	return storage.Options{
		Driver:    c.Storage.Driver,
		Path:      c.Storage.Path,
		RedisURL:  c.Storage.RedisURL,
		Namespace: c.Storage.Namespace,
	}
}

// KnowledgeBaseURL falls back to the analysis backend URL.
func (c *Config) KnowledgeBaseURL() string {
	if c.Knowledge.BaseURL != "" {
		return c.Knowledge.BaseURL
	}
	return c.Backend.BaseURL
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.allowed_origins", []string{"*"})

	v.SetDefault("backend.base_url", "http://localhost:8000")
	v.SetDefault("backend.timeout", "0s")
	v.SetDefault("knowledge.base_url", "")

	v.SetDefault("storage.driver", storage.DriverSQLite)
	v.SetDefault("storage.path", "./mediexplain.db")
	v.SetDefault("storage.redis_url", "redis://localhost:6379/0")
	v.SetDefault("storage.namespace", "mediexplain")

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_ttl", "24h")
	v.SetDefault("auth.login_delay", "1s")

	v.SetDefault("speech.enabled", false)
	v.SetDefault("speech.credentials_file", "")

	v.SetDefault("ratelimit.rps", 1)
	v.SetDefault("ratelimit.burst", 5)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// Default replaces a built-in default. Files and environment still win.
type Default struct {
	Key   string
	Value interface{}
}

// Load reads the configuration. configFile may be empty, in which case
// config.yaml is looked up in the working directory and ./config.
func Load(configFile string, defaults ...Default) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env: %w", err)
	}

	v := viper.New()
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	for _, d := range defaults {
		v.SetDefault(d.Key, d.Value)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !(configFile == "" && errors.Is(err, os.ErrNotExist)) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case storage.DriverMemory, storage.DriverFile, storage.DriverSQLite, storage.DriverRedis:
	default:
		return fmt.Errorf("invalid storage driver: %q", c.Storage.Driver)
	}
	if c.Storage.Driver != storage.DriverMemory && c.Storage.Driver != storage.DriverRedis && c.Storage.Path == "" {
		return fmt.Errorf("storage.path is required for the %s driver", c.Storage.Driver)
	}
	if c.Backend.BaseURL == "" {
		return errors.New("backend.base_url is required")
	}
	if c.Backend.Timeout < 0 {
		return fmt.Errorf("invalid backend timeout: %s", c.Backend.Timeout)
	}
	if c.RateLimit.RPS < 0 || c.RateLimit.Burst < 0 {
		return errors.New("ratelimit values must not be negative")
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format: %s", c.Log.Format)
	}
	return nil
}

// SetupLogging applies the log section to the standard logrus logger.
func SetupLogging(lc LogConfig) {
	level, err := log.ParseLevel(lc.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if strings.EqualFold(lc.Format, "json") {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
