package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/ilyachernuha/real-time-chat/pkg/constant"
)

type Config struct {
	Env               string
	Port              string
	DBURL             string
	AccessTokenSecret string
	AccessExpiryMin   int
	BcryptCost        int

	ApplicationTTL           time.Duration
	RollbackTTL              time.Duration
	ApplicationSweepInterval time.Duration
	RollbackSweepInterval    time.Duration
}

func Load() *Config {
	return &Config{
		Env:               getEnv("ENV", "development"),
		Port:              getEnv("PORT", "8080"),
		DBURL:             mustGetEnv("DB_URL"),
		AccessTokenSecret: mustGetEnv("ACCESS_TOKEN_SECRET"),
		AccessExpiryMin:   getEnvAsInt("ACCESS_TOKEN_EXPIRY", int(constant.DefaultAccessTokenExpiry.Minutes())),
		BcryptCost:        getEnvAsInt("BCRYPT_COST", 0),

		ApplicationTTL:           getEnvAsDuration("APPLICATION_TTL", constant.DefaultApplicationTTL),
		RollbackTTL:              getEnvAsDuration("ROLLBACK_TTL", constant.DefaultRollbackTTL),
		ApplicationSweepInterval: getEnvAsDuration("APPLICATION_SWEEP_INTERVAL", constant.DefaultApplicationSweep),
		RollbackSweepInterval:    getEnvAsDuration("ROLLBACK_SWEEP_INTERVAL", constant.DefaultRollbackSweep),
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}

func getEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := time.ParseDuration(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %s", key, defaultVal)
		return defaultVal
	}
	return val
}
