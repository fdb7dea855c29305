package config

import "time"

func loadTestConfig(cfg *Config) {
	cfg.ServerHost = "127.0.0.1"
	cfg.ServerPort = 0
	cfg.JWTSecret = "test-secret"
	cfg.TokenExpiry = time.Minute
}
