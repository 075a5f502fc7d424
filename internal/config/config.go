package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all process configuration. It is built once at startup and
// injected into the components that need it; business logic never reads the
// environment directly.
type Config struct {
	Server struct {
		Port int
		Env  string // "development" or "production"
	}

	Database struct {
		DSN string
	}

	JWT struct {
		Secret        string
		ExpiresIn     time.Duration
		CookieExpires time.Duration
	}

	Upload struct {
		BasePath     string // directory uploaded images are written to
		BaseURL      string // public URL prefix for stored files
		ImageQuality int    // JPEG quality (1-100)
		ThumbnailPx  int    // square thumbnail edge in pixels
	}

	Email struct {
		SMTPHost     string
		SMTPPort     int
		SMTPUsername string
		SMTPPassword string
		FromEmail    string
	}

	Seed struct {
		OwnerUsername string
		OwnerPassword string
	}
}

// Load reads configuration from environment variables. A .env file is loaded
// first when present so local development does not need exported variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config

	cfg.Server.Port = getInt("PORT", 4000)
	cfg.Server.Env = getString("APP_ENV", "development")

	cfg.Database.DSN = os.Getenv("DATABASE_URL")
	if cfg.Database.DSN == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	ttl, err := time.ParseDuration(getString("JWT_EXPIRES_IN", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRES_IN: %w", err)
	}
	cfg.JWT.ExpiresIn = ttl
	cfg.JWT.CookieExpires = time.Duration(getInt("JWT_COOKIE_EXPIRES_IN", 7)) * 24 * time.Hour

	cfg.Upload.BasePath = getString("UPLOAD_DIR", "./uploads")
	cfg.Upload.BaseURL = "/uploads"
	cfg.Upload.ImageQuality = getInt("IMAGE_QUALITY", 85)
	cfg.Upload.ThumbnailPx = getInt("THUMBNAIL_SIZE", 250)

	cfg.Email.SMTPHost = os.Getenv("EMAIL_HOST")
	cfg.Email.SMTPPort = getInt("EMAIL_PORT", 587)
	cfg.Email.SMTPUsername = os.Getenv("EMAIL_USERNAME")
	cfg.Email.SMTPPassword = os.Getenv("EMAIL_PASSWORD")
	cfg.Email.FromEmail = getString("EMAIL_FROM", "noreply@shop.local")

	cfg.Seed.OwnerUsername = os.Getenv("OWNER_USERNAME")
	cfg.Seed.OwnerPassword = os.Getenv("OWNER_PASSWORD")

	return &cfg, nil
}

// IsProduction reports whether the server runs in production mode. It controls
// the Secure flag on the auth cookie and error detail redaction.
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

func getString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
