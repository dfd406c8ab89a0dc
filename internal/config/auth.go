package config

import (
	"log"
	"os"
	"sync"
	"time"
)

type AuthConfig struct {
	JWTSecret     string
	TokenLifetime time.Duration
}

var (
	authConfig *AuthConfig
	authOnce   sync.Once
)

func LoadAuthConfig() *AuthConfig {
	authOnce.Do(func() {
		secret := os.Getenv("JWT_SECRET")
		if secret == "" {
			secret = "change-me"
			log.Println("Warning: JWT_SECRET not set, using insecure default")
		}
		authConfig = &AuthConfig{
			JWTSecret:     secret,
			TokenLifetime: 24 * time.Hour,
		}
	})
	return authConfig
}
