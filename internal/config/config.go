package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	AuthProviderJWT      = "jwt"
	AuthProviderFirebase = "firebase"
)

var (
	ErrEmptyJWTSecret          = errors.New("JWT_SECRET is required for the jwt auth provider")
	ErrMissingFirebaseCreds    = errors.New("FIREBASE_CREDENTIALS_FILE is required for the firebase auth provider")
	ErrUnsupportedAuthProvider = errors.New("unsupported AUTH_PROVIDER")
)

type Config struct {
	Port        string `mapstructure:"PORT"`
	Env         string `mapstructure:"APP_ENV"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`
	APIBasePath string `mapstructure:"API_BASE_PATH"`

	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	AuthProvider            string        `mapstructure:"AUTH_PROVIDER"`
	JWTSecret               string        `mapstructure:"JWT_SECRET"`
	JWTIssuer               string        `mapstructure:"JWT_ISSUER"`
	JWTAudience             string        `mapstructure:"JWT_AUDIENCE"`
	FirebaseCredentialsFile string        `mapstructure:"FIREBASE_CREDENTIALS_FILE"`
	FirebaseProjectID       string        `mapstructure:"FIREBASE_PROJECT_ID"`
	AuthCacheTTL            time.Duration `mapstructure:"AUTH_CACHE_TTL"`

	EmailEnabled  bool   `mapstructure:"EMAIL_ENABLED"`
	EmailFrom     string `mapstructure:"EMAIL_FROM"`
	EmailFromName string `mapstructure:"EMAIL_FROM_NAME"`
	SMTPHost      string `mapstructure:"SMTP_HOST"`
	SMTPPort      string `mapstructure:"SMTP_PORT"`
	SMTPUser      string `mapstructure:"SMTP_USER"`
	SMTPPass      string `mapstructure:"SMTP_PASS"`

	SeedOnStart    bool     `mapstructure:"SEED_ON_START"`
	RateLimitRPS   float64  `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst int      `mapstructure:"RATE_LIMIT_BURST"`
	CORSOrigins    []string `mapstructure:"CORS_ORIGINS"`
}

var defaults = map[string]interface{}{
	"PORT":          "8080",
	"APP_ENV":       "development",
	"LOG_LEVEL":     "info",
	"API_BASE_PATH": "",

	"REDIS_ADDR":     "localhost:6379",
	"REDIS_PASSWORD": "",
	"REDIS_DB":       0,

	"AUTH_PROVIDER":             AuthProviderJWT,
	"JWT_SECRET":                "",
	"JWT_ISSUER":                "",
	"JWT_AUDIENCE":              "authenticated",
	"FIREBASE_CREDENTIALS_FILE": "",
	"FIREBASE_PROJECT_ID":       "",
	"AUTH_CACHE_TTL":            "5m",

	"EMAIL_ENABLED":   false,
	"EMAIL_FROM":      "noreply@3rdstreetboxing.com",
	"EMAIL_FROM_NAME": "3rd Street Boxing Gym",
	"SMTP_HOST":       "localhost",
	"SMTP_PORT":       "587",
	"SMTP_USER":       "",
	"SMTP_PASS":       "",

	"SEED_ON_START":    true,
	"RATE_LIMIT_RPS":   5.0,
	"RATE_LIMIT_BURST": 10,
	"CORS_ORIGINS":     "*",
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.AuthProvider {
	case AuthProviderJWT:
		if c.JWTSecret == "" {
			return ErrEmptyJWTSecret
		}
	case AuthProviderFirebase:
		if c.FirebaseCredentialsFile == "" {
			return ErrMissingFirebaseCreds
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedAuthProvider, c.AuthProvider)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
