package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port                 string
	Env                  string
	PostgresConnStr      string
	SessionLimit         int
	SessionTokenDuration time.Duration
	AccessTokenDuration  time.Duration
	AccessTokenSecret    string
	ResendAPIKey         string
	OTCFromEmail         string
	FrontendOrigin       string
	IsProd               bool
}

func Load() *Config {
	return &Config{
		Port:                 getEnv("PORT", "8080"),
		Env:                  getEnv("ENV", "development"),
		PostgresConnStr:      getEnv("POSTGRES_CONN_STR", ""),
		SessionLimit:         getEnvInt("SESSION_LIMIT", 2),
		SessionTokenDuration: getEnvDuration("SESSION_TOKEN_DURATION", 24*time.Hour),
		AccessTokenDuration:  getEnvDuration("ACCESS_TOKEN_DURATION", 30*time.Minute),
		AccessTokenSecret:    getEnv("ACCESS_TOKEN_SECRET", "supersecretjwtkey"),
		ResendAPIKey:         getEnv("RESEND_API_KEY", ""),
		OTCFromEmail:         getEnv("OTC_FROM_EMAIL", "noreply@azura.app"),
		FrontendOrigin:       getEnv("FRONTEND_ORIGIN", "http://localhost:5173"),
		IsProd:               getEnv("IS_PROD", "0") == "1",
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
