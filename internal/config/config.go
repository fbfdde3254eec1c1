package config

import "os"

type Config struct {
	Addr         string
	DatabaseURL  string
	AllowOrigins string
	Env          string
	LogLevel     string
}

func Load() Config {
	return Config{
		Addr:         ":" + getenv("PORT", "5001"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		AllowOrigins: getenv("ALLOW_ORIGINS", "*"),
		Env:          getenv("APP_ENV", "dev"),
		LogLevel:     getenv("LOG_LEVEL", "info"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
