package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	GoEnv    string `env:"GO_ENV" envDefault:"development"`
	Port     string `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL"`

	DatabaseDriver  string        `env:"DATABASE_DRIVER" envDefault:"postgres"`
	DatabaseURL     string        `env:"DATABASE_URL"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`

	JWTSecret   string        `env:"JWT_SECRET"`
	JWTIssuer   string        `env:"JWT_ISSUER" envDefault:"tailorshop-api"`
	JWTAudience string        `env:"JWT_AUDIENCE" envDefault:"tailorshop"`
	JWTTTL      time.Duration `env:"JWT_TTL" envDefault:"5h"`

	AWSRegion          string        `env:"AWS_REGION" envDefault:"us-east-1"`
	AWSS3Bucket        string        `env:"AWS_S3_BUCKET"`
	AWSAccessKeyID     string        `env:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey string        `env:"AWS_SECRET_ACCESS_KEY"`
	AWSEndpointURL     string        `env:"AWS_ENDPOINT_URL"` // S3-compatible stores such as MinIO
	PresignTTL         time.Duration `env:"PRESIGN_TTL" envDefault:"1h"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

const developmentJWTSecret = "insecure-development-secret"

// Load reads .env.<GO_ENV> (falling back to .env) into the process environment
// and parses it. Missing files are fine: in production the variables are set directly.
func Load() (*Config, string, error) {
	goEnv := os.Getenv("GO_ENV")
	if goEnv == "" {
		goEnv = "development"
	}

	loaded := fmt.Sprintf(".env.%s", goEnv)
	if err := godotenv.Load(loaded); err != nil {
		loaded = ".env"
		if err := godotenv.Load(); err != nil {
			loaded = ""
		}
	}

	cfg, err := Parse()
	return cfg, loaded, err
}

// Parse builds a Config from the environment alone.
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("config parse: %w", err)
	}
	if cfg.JWTSecret == "" && !cfg.IsProduction() {
		cfg.JWTSecret = developmentJWTSecret
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that all required configuration values are set
func (c *Config) Validate() error {
	switch c.GoEnv {
	case "development", "test", "production":
	default:
		return fmt.Errorf("GO_ENV must be development, test or production, got %q", c.GoEnv)
	}

	switch c.DatabaseDriver {
	case "postgres":
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required")
		}
	case "sqlite":
	default:
		return fmt.Errorf("DATABASE_DRIVER must be postgres or sqlite, got %q", c.DatabaseDriver)
	}

	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be positive")
	}
	if c.PresignTTL <= 0 {
		return fmt.Errorf("PRESIGN_TTL must be positive")
	}
	return nil
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.GoEnv == "production"
}

// IsTest returns true if the application is running in test mode
func (c *Config) IsTest() bool {
	return c.GoEnv == "test"
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.GoEnv == "development"
}

// SQLitePath is the database file used when DATABASE_DRIVER is sqlite.
func (c *Config) SQLitePath() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return "tailorshop.db"
}
