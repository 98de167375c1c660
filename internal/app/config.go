package app

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds the runtime configuration, loaded from environment
// variables with sensible defaults for local development.
type Config struct {
	AppPort     string
	APIBaseURL  string
	HTTPTimeout time.Duration
	Offline     bool

	DatabaseDriver string
	DatabaseDSN    string

	JWTSecret   string
	RabbitMQURL string
	SessionFile string
}

// LoadConfig reads configuration via Viper. Environment variables win
// over defaults.
func LoadConfig() Config {
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("API_BASE_URL", "http://localhost:8080/api")
	viper.SetDefault("HTTP_TIMEOUT", "15s")
	viper.SetDefault("OFFLINE", false)
	viper.SetDefault("DATABASE_DRIVER", "sqlite")
	viper.SetDefault("DATABASE_DSN", "file::memory:?cache=shared")
	viper.SetDefault("JWT_SECRET", "dev-secret-change-me")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("SESSION_FILE", "")
	viper.AutomaticEnv()

	return Config{
		AppPort:        viper.GetString("APP_PORT"),
		APIBaseURL:     viper.GetString("API_BASE_URL"),
		HTTPTimeout:    viper.GetDuration("HTTP_TIMEOUT"),
		Offline:        viper.GetBool("OFFLINE"),
		DatabaseDriver: viper.GetString("DATABASE_DRIVER"),
		DatabaseDSN:    viper.GetString("DATABASE_DSN"),
		JWTSecret:      viper.GetString("JWT_SECRET"),
		RabbitMQURL:    viper.GetString("RABBITMQ_URL"),
		SessionFile:    viper.GetString("SESSION_FILE"),
	}
}
