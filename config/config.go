package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/bytes"
)

type Config struct {
	// Gemini
	GoogleAPIKey string        `env:"GOOGLE_API_KEY,required,notEmpty"`
	TextModel    string        `env:"TEXT_MODEL" envDefault:"gemini-2.0-flash"`
	ImageModel   string        `env:"IMAGE_MODEL" envDefault:"gemini-2.0-flash-preview-image-generation"`
	ModelTimeout time.Duration `env:"MODEL_TIMEOUT" envDefault:"45s"`

	// Server
	Port             int      `env:"PORT" envDefault:"8000"`
	Environment      string   `env:"ENV" envDefault:"local"`
	MaxUploadSize    string   `env:"MAX_UPLOAD_SIZE" envDefault:"20M"`
	RateLimit        float64  `env:"RATE_LIMIT" envDefault:"10"`
	CORSAllowOrigins []string `env:"CORS_ALLOW_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173,http://127.0.0.1:5173,http://localhost:8080,http://127.0.0.1:8080"`

	// Sentry, disabled when empty
	SentryDSN string `env:"SENTRY_DSN"`

	// Smart pairing renders one product image per suggestion
	PairingImageGeneration bool          `env:"PAIRING_IMAGE_GENERATION" envDefault:"true"`
	PairingTimeout         time.Duration `env:"PAIRING_TIMEOUT" envDefault:"120s"`
}

// Load reads an optional .env file and then the process environment.
// A missing GOOGLE_API_KEY is an error so the server refuses to start without it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println(".env file not found, using environment variables")
	}
	return Parse()
}

// Parse reads the configuration from the process environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.ModelTimeout <= 0 {
		return nil, fmt.Errorf("parse config: MODEL_TIMEOUT must be positive, got %s", cfg.ModelTimeout)
	}
	if cfg.PairingTimeout <= 0 {
		return nil, fmt.Errorf("parse config: PAIRING_TIMEOUT must be positive, got %s", cfg.PairingTimeout)
	}
	if limit, err := bytes.Parse(cfg.MaxUploadSize); err != nil || limit <= 0 {
		return nil, fmt.Errorf("parse config: invalid MAX_UPLOAD_SIZE %q", cfg.MaxUploadSize)
	}
	if cfg.RateLimit <= 0 {
		return nil, fmt.Errorf("parse config: RATE_LIMIT must be positive, got %v", cfg.RateLimit)
	}
	return cfg, nil
}

func (c *Config) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}
