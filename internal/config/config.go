package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port           int    `mapstructure:"PORT"`
	Env            string `mapstructure:"APP_ENV"` // development | production
	WorkerPoolSize int    `mapstructure:"WORKER_POOL_SIZE"`

	// Advice provider
	OpenAIAPIKey string `mapstructure:"OPENAI_API_KEY"`
	ConsejoModel string `mapstructure:"CONSEJO_MODEL"`

	// Shop identity printed on invoices and reports
	NegocioNombre string `mapstructure:"NEGOCIO_NOMBRE"`
	NegocioNIT    string `mapstructure:"NEGOCIO_NIT"`
	NegocioCiudad string `mapstructure:"NEGOCIO_CIUDAD"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("WORKER_POOL_SIZE", 2)
	viper.SetDefault("CONSEJO_MODEL", "gpt-4o")
	viper.SetDefault("NEGOCIO_NOMBRE", "SUPER CARNES")
	viper.SetDefault("NEGOCIO_NIT", "900.555.222-1")
	viper.SetDefault("NEGOCIO_CIUDAD", "Cali, Colombia")

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
