package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Fallback signing secret. Running with it is a deployment misconfiguration;
// LoadConfig warns loudly when JWT_SECRET is unset.
const defaultJWTSecret = "your-secret-key-change-this-in-production"

type Config struct {
	DatabaseURL   string
	SQLitePath    string
	JWTSecret     string
	Port          string
	StaticDir     string
	AdminPassword string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		SQLitePath:    os.Getenv("SQLITE_PATH"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		Port:          os.Getenv("PORT"),
		StaticDir:     os.Getenv("STATIC_DIR"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}
	if cfg.SQLitePath == "" {
		cfg.SQLitePath = "global_horizons.db"
	}
	if cfg.JWTSecret == "" {
		log.Println("WARNING: JWT_SECRET not set, using insecure default")
		cfg.JWTSecret = defaultJWTSecret
	}
	if cfg.Port == "" {
		cfg.Port = "3000"
	}
	if cfg.StaticDir == "" {
		cfg.StaticDir = "public"
	}
	return cfg
}
