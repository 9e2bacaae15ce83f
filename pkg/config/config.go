package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	BankName       string
	AuditLogPath   string
	MigrationsPath string
}

// LoadConfig loads configuration from environment variables and a .env file
// if present. Environment variables override .env values, which override the
// defaults.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("BANK_NAME", "Mayank's Bank")
	viper.SetDefault("AUDIT_LOG_PATH", "audit.log")
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")

	viper.AutomaticEnv()

	return &Config{
		DatabaseURL:    viper.GetString("PGSQL_URL"),
		Port:           viper.GetString("PORT"),
		IsProduction:   viper.GetBool("IS_PRODUCTION"),
		BankName:       viper.GetString("BANK_NAME"),
		AuditLogPath:   viper.GetString("AUDIT_LOG_PATH"),
		MigrationsPath: viper.GetString("MIGRATIONS_PATH"),
	}, nil
}
