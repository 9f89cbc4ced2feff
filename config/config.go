package config

import (
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	DatabaseURL    string
	MigrationsPath string
	UploadDir      string
	PublicBaseURL  string
	LogLevel       string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getEnv("PORT", ":8080"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "database/migrations"),
		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),
		PublicBaseURL:  getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
	}
	return cfg, cfg.validate()
}

func (c *Config) validate() error {
	var result *multierror.Error
	if c.DatabaseURL == "" {
		result = multierror.Append(result, errMissing("DATABASE_URL"))
	}
	if c.Port == "" {
		result = multierror.Append(result, errMissing("PORT"))
	}
	return result.ErrorOrNil()
}

type missingVarError string

func errMissing(name string) error {
	return missingVarError(name)
}

func (e missingVarError) Error() string {
	return string(e) + " is not set"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
