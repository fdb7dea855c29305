package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
)

// SeedPrincipal is a principal registered at startup so the login flow works
// before any real account management exists.
type SeedPrincipal struct {
	ID           string
	Name         string
	PasswordHash string
}

type Config struct {
	Hostname       string
	ServerHost     string
	ServerPort     int
	JWTSecret      string
	TokenExpiry    time.Duration
	SeedPrincipals []SeedPrincipal
}

const environmentENV = "ENVIRONMENT"

func New() (*Config, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	cfg := &Config{
		Hostname:    hostname,
		ServerPort:  3690,
		TokenExpiry: 15 * time.Minute,
	}

	switch os.Getenv(environmentENV) {
	case "development", "":
		loadDevelopmentConfig(cfg)
	case "test":
		loadTestConfig(cfg)
	case "production":
		if err := loadProductionConfig(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}
