package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const defaultJWTSecret = "change-me"

type Config struct {
	App       AppConfig         `envconfig:"APP"`
	Database  DatabaseConfig    `envconfig:"DB"`
	Redis     RedisConfig       `envconfig:"REDIS"`
	JWT       JWTConfig         `envconfig:"JWT"`
	Admin     AdminConfig       `envconfig:"ADMIN"`
	Google    GoogleOAuthConfig `envconfig:"GOOGLE"`
	Gemini    GeminiConfig      `envconfig:"GEMINI"`
	Storage   StorageConfig     `envconfig:"S3"`
	GeoIP     GeoIPConfig       `envconfig:"GEOIP"`
	Tracking  TrackingConfig    `envconfig:"TRACKING"`
	Wizard    WizardConfig      `envconfig:"WIZARD"`
	RateLimit RateLimitConfig   `envconfig:"RATE_LIMIT"`
	Scheduler SchedulerConfig   `envconfig:"SCHEDULER"`
	Log       LogConfig         `envconfig:"LOG"`
}

type AppConfig struct {
	Name     string `default:"Search Funnel API"`
	Port     string `default:"3000"`
	Env      string `default:"development"`
	BaseURL  string `split_words:"true" default:"http://localhost:3000"`
	SiteName string `split_words:"true" default:"Search Funnel"`
}

type DatabaseConfig struct {
	Host         string `default:"localhost"`
	Port         string `default:"5432"`
	User         string `default:"postgres"`
	Password     string
	Name         string `default:"funnel"`
	SSLMode      string `split_words:"true" default:"disable"`
	MaxOpenConns int    `split_words:"true" default:"25"`
	LogQueries   bool   `split_words:"true" default:"false"`
}

type RedisConfig struct {
	Host     string `default:"localhost"`
	Port     string `default:"6379"`
	Password string
	DB       int `default:"0"`
}

type JWTConfig struct {
	Secret    string        `default:"change-me"`
	ExpiresIn time.Duration `split_words:"true" default:"24h"`
}

// AdminConfig describes the single operator account plus the Google
// accounts allowed to sign in to the console.
type AdminConfig struct {
	Username      string   `default:"admin"`
	PasswordHash  string   `split_words:"true"`
	AllowedEmails []string `split_words:"true"`
	// ConsoleURL receives ?token= after Google sign-in; empty answers JSON.
	ConsoleURL string `split_words:"true"`
}

type GoogleOAuthConfig struct {
	ClientID     string `split_words:"true"`
	ClientSecret string `split_words:"true"`
	RedirectURL  string `split_words:"true" default:"http://localhost:3000/api/v1/auth/google/callback"`
}

type GeminiConfig struct {
	APIKey     string        `envconfig:"API_KEY"`
	TextModel  string        `split_words:"true" default:"gemini-2.5-flash"`
	ImageModel string        `split_words:"true" default:"gemini-2.5-flash-image"`
	Timeout    time.Duration `default:"60s"`
	// PadPhrases keeps the legacy behavior of filling short phrase lists
	// with "Related search N for <topic>" placeholders.
	PadPhrases bool `split_words:"true" default:"true"`
}

type StorageConfig struct {
	Endpoint        string
	Region          string `default:"auto"`
	Bucket          string
	AccessKeyID     string `envconfig:"ACCESS_KEY_ID"`
	SecretAccessKey string `split_words:"true"`
	PublicBaseURL   string `split_words:"true"`
	Prefix          string `default:"funnel"`
}

func (s StorageConfig) Enabled() bool {
	return s.Bucket != "" && s.AccessKeyID != "" && s.SecretAccessKey != ""
}

type GeoIPConfig struct {
	Enabled  bool          `default:"true"`
	Endpoint string        `default:"http://ip-api.com/json/"`
	Timeout  time.Duration `default:"2s"`
	CacheTTL time.Duration `split_words:"true" default:"24h"`
}

type TrackingConfig struct {
	QueueSize     int    `split_words:"true" default:"1024"`
	Workers       int    `default:"2"`
	SessionCookie string `split_words:"true" default:"fsid"`
	SecureCookie  bool   `split_words:"true" default:"false"`
}

type WizardConfig struct {
	DraftTTL time.Duration `split_words:"true" default:"24h"`
}

type RateLimitConfig struct {
	Enabled           bool `default:"true"`
	MaxRequests       int  `split_words:"true" default:"120"`
	WindowSeconds     int  `split_words:"true" default:"60"`
	AuthMaxRequests   int  `split_words:"true" default:"10"`
	AuthWindowSeconds int  `split_words:"true" default:"60"`
	TrackMaxRequests  int  `split_words:"true" default:"60"`
}

type SchedulerConfig struct {
	Enabled       bool   `default:"true"`
	AuditCron     string `split_words:"true" default:"0 * * * *"`
	RetentionCron string `split_words:"true" default:"0 3 * * *"`
	// RetentionDays of 0 keeps analytics events forever.
	RetentionDays int `split_words:"true" default:"0"`
}

type LogConfig struct {
	Dir     string `default:"logs"`
	Console bool   `default:"true"`
}

// LoadConfig reads .env (if present) and the process environment.
func LoadConfig() (*Config, error) {
	return LoadConfigFrom("")
}

// LoadConfigFrom is LoadConfig with an explicit env file. A missing file is
// only an error when it was asked for by name.
func LoadConfigFrom(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	} else if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Tracking.QueueSize < 1 {
		return errors.New("TRACKING_QUEUE_SIZE must be at least 1")
	}
	if c.Tracking.Workers < 1 {
		return errors.New("TRACKING_WORKERS must be at least 1")
	}
	if c.Scheduler.RetentionDays < 0 {
		return errors.New("SCHEDULER_RETENTION_DAYS cannot be negative")
	}
	if c.IsProduction() && c.JWT.Secret == defaultJWTSecret {
		return errors.New("JWT_SECRET must be set in production")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode)
}

func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%s", r.Host, r.Port)
}
