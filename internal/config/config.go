package config

import (
	"time"

	"github.com/NehaP156/linkedln-clone-gemini/internal/infrastructure"
)

type Config struct {
	Port          string
	PostgreSQL    string
	SessionSecret string
	SessionTTL    time.Duration
	BcryptCost    int
}

func Load() *Config {
	return &Config{
		Port:          infrastructure.GetEnvAsString("PORT", "3000"),
		PostgreSQL:    infrastructure.GetEnvAsString("PostgreSQL", "host=localhost user=postgres dbname=linkedin_clone sslmode=disable"),
		SessionSecret: infrastructure.GetEnvAsString("SESSION_SECRET", "keyboard cat"),
		SessionTTL:    infrastructure.GetEnvAsDuration("SESSION_TTL", 24*time.Hour),
		BcryptCost:    infrastructure.GetEnvAsInt("BCRYPT_COST", 10),
	}
}
