package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
	StoreDriverMongo    = "mongo"
)

type Config struct {
	App       AppConfig
	Log       LogConfig
	DB        DBConfig
	Mongo     MongoConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Auth      AuthConfig
	Booking   BookingConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
}

type AppConfig struct {
	Port     string
	Env      string
	Timezone string
}

type LogConfig struct {
	Level string
}

type DBConfig struct {
	Driver      string
	URL         string
	Host        string
	Port        string
	User        string
	Password    string
	Name        string
	SSLMode     string
	AutoMigrate bool
}

// ConnectionURL returns DATABASE_URL when set, otherwise a postgres URL
// assembled from the individual DB_* settings.
func (c DBConfig) ConnectionURL() string {
	if c.URL != "" {
		return c.URL
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Host + ":" + c.Port,
		Path:     "/" + c.Name,
		RawQuery: "sslmode=" + c.SSLMode,
	}
	return u.String()
}

type MongoConfig struct {
	URI      string
	Database string
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret       string
	AccessExpiry time.Duration
}

type AuthConfig struct {
	IssueToken bool
}

type BookingConfig struct {
	CheckConflicts bool
	// DefaultStatus is empty when not configured; the usecase then derives it
	// from CheckConflicts.
	DefaultStatus string
}

type RateLimitConfig struct {
	RPS   float64
	Burst int
}

type CORSConfig struct {
	AllowedOrigins []string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "5000")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_TIMEZONE", "UTC")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORE_DRIVER", StoreDriverPostgres)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_AUTO_MIGRATE", true)
	v.SetDefault("MONGODB_DATABASE", "medical_appointments")
	v.SetDefault("REDIS_ENABLED", false)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("JWT_ACCESS_EXPIRY", "24h")
	v.SetDefault("BOOKING_CHECK_CONFLICTS", true)
	v.SetDefault("RATE_LIMIT_RPS", 5)
	v.SetDefault("RATE_LIMIT_BURST", 10)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
}

// LoadConfig reads .env (if present) and the process environment.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	accessExpiry, err := time.ParseDuration(v.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 24 * time.Hour
	}

	secret := v.GetString("JWT_SECRET")
	issueToken := secret != ""
	if v.IsSet("AUTH_ISSUE_TOKEN") {
		issueToken = v.GetBool("AUTH_ISSUE_TOKEN")
	}

	cfg := &Config{
		App: AppConfig{
			Port:     v.GetString("APP_PORT"),
			Env:      v.GetString("APP_ENV"),
			Timezone: v.GetString("APP_TIMEZONE"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		DB: DBConfig{
			Driver:      strings.ToLower(v.GetString("STORE_DRIVER")),
			URL:         v.GetString("DATABASE_URL"),
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetString("DB_PORT"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASSWORD"),
			Name:        v.GetString("DB_NAME"),
			SSLMode:     v.GetString("DB_SSLMODE"),
			AutoMigrate: v.GetBool("DB_AUTO_MIGRATE"),
		},
		Mongo: MongoConfig{
			URI:      v.GetString("MONGODB_URI"),
			Database: v.GetString("MONGODB_DATABASE"),
		},
		Redis: RedisConfig{
			Enabled:  v.GetBool("REDIS_ENABLED"),
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:       secret,
			AccessExpiry: accessExpiry,
		},
		Auth: AuthConfig{
			IssueToken: issueToken,
		},
		Booking: BookingConfig{
			CheckConflicts: v.GetBool("BOOKING_CHECK_CONFLICTS"),
			DefaultStatus:  v.GetString("BOOKING_DEFAULT_STATUS"),
		},
		RateLimit: RateLimitConfig{
			RPS:   v.GetFloat64("RATE_LIMIT_RPS"),
			Burst: v.GetInt("RATE_LIMIT_BURST"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations the server cannot start with.
func (c *Config) Validate() error {
	switch c.DB.Driver {
	case StoreDriverPostgres:
		if c.DB.URL == "" && c.DB.Name == "" {
			return errors.New("DATABASE_URL or DB_NAME is required for the postgres store")
		}
	case StoreDriverMongo:
		if c.Mongo.URI == "" {
			return errors.New("MONGODB_URI is required for the mongo store")
		}
	case StoreDriverMemory:
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q", c.DB.Driver)
	}

	if c.Auth.IssueToken && c.JWT.Secret == "" {
		return errors.New("JWT_SECRET is required when AUTH_ISSUE_TOKEN is enabled")
	}

	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		return fmt.Errorf("invalid APP_TIMEZONE %q: %w", c.App.Timezone, err)
	}

	switch c.Booking.DefaultStatus {
	case "", "Pending", "Confirmed":
	default:
		return fmt.Errorf("BOOKING_DEFAULT_STATUS must be Pending or Confirmed, got %q", c.Booking.DefaultStatus)
	}

	return nil
}

// Location returns the reference time zone used for calendar-day bucketing.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
