package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/odosui/mt/internal/logger"
	"github.com/odosui/mt/internal/utils"
)

// Config carries the server's runtime settings. Values come from an optional
// yaml file (path in MT_CONFIG) with environment variables taking precedence
// over whatever the file left unset.
type Config struct {
	Port    int    `yaml:"port"`
	LogMode string `yaml:"log_mode"`

	DBDriver string `yaml:"db_driver"` // "postgres" or "sqlite"
	DBDSN    string `yaml:"db_dsn"`

	CORSOrigins []string `yaml:"cors_origins"`

	JWTSecret      string `yaml:"jwt_secret"`
	AccessTokenTTL int    `yaml:"access_token_ttl"` // seconds

	// ReviewPeriods overrides the note review day table. Leave empty for
	// the default schedule.
	ReviewPeriods []int `yaml:"review_periods"`
}

func Load(log *logger.Logger) (*Config, error) {
	cfg := &Config{}

	if path := os.Getenv("MT_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
		if log != nil {
			log.Info("Loaded config file", "path", path)
		}
	}

	if cfg.Port == 0 {
		cfg.Port = 8080
	}
	cfg.Port = utils.GetEnvAsInt("PORT", cfg.Port, log)

	if cfg.LogMode == "" {
		cfg.LogMode = "development"
	}
	cfg.LogMode = utils.GetEnv("LOG_MODE", cfg.LogMode, log)

	if cfg.DBDriver == "" {
		cfg.DBDriver = "postgres"
	}
	cfg.DBDriver = utils.GetEnv("DB_DRIVER", cfg.DBDriver, log)
	cfg.DBDSN = utils.GetEnv("DB_DSN", cfg.DBDSN, log)

	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{"http://localhost:5173", "http://localhost:3000"}
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "defaultsecret"
	}
	cfg.JWTSecret = utils.GetEnv("JWT_SECRET_KEY", cfg.JWTSecret, log)

	if cfg.AccessTokenTTL == 0 {
		cfg.AccessTokenTTL = 3600 * 24
	}
	cfg.AccessTokenTTL = utils.GetEnvAsInt("ACCESS_TOKEN_TTL", cfg.AccessTokenTTL, log)

	return cfg, nil
}
