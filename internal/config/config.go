package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	DriverSQLite = "sqlite"
	DriverMongo  = "mongo"
)

// Config holds application level configuration aggregated from env/config files.
type Config struct {
	Server struct {
		Addr           string
		AllowedOrigins []string
	}
	Database struct {
		Driver string
		Path   string
		URI    string
		Name   string
	}
	Auth struct {
		JWTSecret       string
		TokenTTLMinutes int
		CookieSecure    bool
	}
	Gateway struct {
		BaseURL        string
		TimeoutSeconds int
	}
	Storage struct {
		Bucket        string
		KeyPrefix     string
		Region        string
		Endpoint      string
		PublicBaseURL string
	}
	AWS struct {
		Profile string
	}
	Log struct {
		Level  string
		Format string
	}
}

// Load reads configuration from environment variables and optional config files.
// Variables from a .env file in the working directory never override the
// real environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("MENTORHUB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.addr", "0.0.0.0:5000")
	v.SetDefault("server.allowedorigins", []string{})
	v.SetDefault("database.driver", DriverSQLite)
	v.SetDefault("database.path", "data/mentorhub.db")
	v.SetDefault("database.uri", "")
	v.SetDefault("database.name", "mentorhub")
	v.SetDefault("auth.jwtsecret", "")
	v.SetDefault("auth.tokenttlminutes", 15*24*60)
	v.SetDefault("auth.cookiesecure", false)
	v.SetDefault("gateway.baseurl", "https://gdghack-2.onrender.com")
	v.SetDefault("gateway.timeoutseconds", 0)
	v.SetDefault("storage.bucket", "")
	v.SetDefault("storage.keyprefix", "profile-images")
	v.SetDefault("storage.region", "us-east-1")
	v.SetDefault("storage.endpoint", "")
	v.SetDefault("storage.publicbaseurl", "")
	v.SetDefault("aws.profile", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetConfigName("config")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

// Validate reports settings the server cannot start with.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Auth.JWTSecret) == "" {
		return errors.New("auth jwt secret is required")
	}
	if c.Auth.TokenTTLMinutes <= 0 {
		return errors.New("auth token ttl must be positive")
	}
	if c.Gateway.TimeoutSeconds < 0 {
		return errors.New("gateway timeout must not be negative")
	}
	if strings.TrimSpace(c.Gateway.BaseURL) == "" {
		return errors.New("gateway base url is required")
	}
	switch c.Database.Driver {
	case DriverSQLite:
		if c.Database.Path == "" {
			return errors.New("database path is required for sqlite")
		}
	case DriverMongo:
		if c.Database.URI == "" {
			return errors.New("database uri is required for mongo")
		}
	default:
		return fmt.Errorf("unknown database driver %q", c.Database.Driver)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

func (c Config) TokenTTL() time.Duration {
	return time.Duration(c.Auth.TokenTTLMinutes) * time.Minute
}

// GatewayTimeout is zero when outbound calls should not time out.
func (c Config) GatewayTimeout() time.Duration {
	return time.Duration(c.Gateway.TimeoutSeconds) * time.Second
}

// NewLogger builds the process logger from the log settings.
func (c Config) NewLogger() (*logrus.Logger, error) {
	logger := logrus.New()
	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	logger.SetLevel(level)
	if strings.EqualFold(c.Log.Format, "json") {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger, nil
}
