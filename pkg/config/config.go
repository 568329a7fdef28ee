package config

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

// Config groups the application configuration, read once at startup and
// passed down by reference. Nothing reads environment variables after Load.
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	DB      DBConfig
	JWT     JWTConfig
	Storage StorageConfig
}

// AppConfig general application settings.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig HTTP server settings.
type HTTPConfig struct {
	Host       string
	Port       int
	CORSOrigin string
}

// Addr returns the listen address (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DBConfig PostgreSQL settings. When DatabaseURL is set it is used as the
// full connection string; otherwise the DSN is built from the parts.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString returns DatabaseURL when set, otherwise DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN builds the PostgreSQL connection string, URL-encoding credentials so
// special characters in the password survive.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// JWTConfig token signing settings. Secret is required and must never be
// logged.
type JWTConfig struct {
	Secret string
	TTL    time.Duration
	Issuer string
}

// StorageConfig upload storage settings. Driver is "local" or "s3".
type StorageConfig struct {
	Driver       string
	UploadDir    string
	S3Endpoint   string
	S3Region     string
	S3Bucket     string
	S3AccessKey  string
	S3SecretKey  string
	S3PublicBase string
}

// ErrMissingJWTSecret is returned by Load when JWT_SECRET is unset.
var ErrMissingJWTSecret = errors.New("config: JWT_SECRET is required")

// Load reads configuration from environment variables (optionally seeded
// from a .env file). Env vars take priority. Expected names: APP_ENV,
// HTTP_PORT, DATABASE_URL, JWT_SECRET, STORAGE_DRIVER, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Optional .env file in the working directory; absence is fine.
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "flowmint"),
		},
		HTTP: HTTPConfig{
			Host:       getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:       getInt(v, "HTTP_PORT", 5000),
			CORSOrigin: getString(v, "CORS_ORIGIN", "http://localhost:3000"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "flowmint"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			Secret: getString(v, "JWT_SECRET", ""),
			TTL:    time.Duration(getInt(v, "JWT_TTL_MINUTES", 60)) * time.Minute,
			Issuer: getString(v, "JWT_ISSUER", "flowmint"),
		},
		Storage: StorageConfig{
			Driver:       getString(v, "STORAGE_DRIVER", "local"),
			UploadDir:    getString(v, "UPLOAD_DIR", "uploads"),
			S3Endpoint:   getString(v, "S3_ENDPOINT", ""),
			S3Region:     getString(v, "S3_REGION", "us-east-1"),
			S3Bucket:     getString(v, "S3_BUCKET", ""),
			S3AccessKey:  getString(v, "S3_ACCESS_KEY", ""),
			S3SecretKey:  getString(v, "S3_SECRET_KEY", ""),
			S3PublicBase: getString(v, "S3_PUBLIC_BASE_URL", ""),
		},
	}

	if cfg.JWT.Secret == "" {
		return nil, ErrMissingJWTSecret
	}
	if cfg.Storage.Driver != "local" && cfg.Storage.Driver != "s3" {
		return nil, fmt.Errorf("config: unknown STORAGE_DRIVER %q", cfg.Storage.Driver)
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
