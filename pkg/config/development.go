package config

import (
	"os"
	"strconv"
)

// devPrincipalHash is the argon2id hash of the development principal's
// password. Regenerate with cmd/hashpw.
const devPrincipalHash = "$argon2id$v=19$m=65536,t=3,p=4$kMP1sDRlsi9pNslais3SOA$7OzEVt2Vqi72OQJQksXA5SzBnbqHaq7F6O7Pw0Xib9s"

func loadDevelopmentConfig(cfg *Config) {
	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err == nil {
		cfg.ServerPort = port
	}

	cfg.ServerHost = "127.0.0.1"
	cfg.JWTSecret = "development-secret"
	cfg.SeedPrincipals = []SeedPrincipal{
		{ID: "123", Name: "Jose", PasswordHash: devPrincipalHash},
	}
}
