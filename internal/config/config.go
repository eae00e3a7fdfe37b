package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	HTTPPort       string
	Backend        string // "postgres" or "file"
	DatabaseDSN    string
	DataDir        string // file backend storage directory
	JWTSecret      string
	CORSOrigins    string
	SharedUser     string // the single shared login
	SharedPassHash string // bcrypt hash; the plaintext never reaches the process
}

func Load() *Config {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		HTTPPort:       getEnv("HTTP_PORT", "8080"),
		Backend:        getEnv("BACKEND", "postgres"),
		DatabaseDSN:    getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=oktodeck port=5432 sslmode=disable"),
		DataDir:        getEnv("DATA_DIR", "./data"),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		CORSOrigins:    getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		SharedUser:     getEnv("SHARED_USERNAME", "Oktodeck"),
		SharedPassHash: getEnv("SHARED_PASSWORD_HASH", ""),
	}

	if cfg.JWTSecret == "" {
		log.Fatal("[FATAL] JWT_SECRET is not set. It is required.")
	}
	if len(cfg.JWTSecret) < 32 {
		log.Fatal("[FATAL] JWT_SECRET must be at least 32 characters.")
	}
	if cfg.SharedPassHash == "" {
		log.Fatal("[FATAL] SHARED_PASSWORD_HASH is not set. It is required. Generate one with `htpasswd -bnBC 12 '' <password>`.")
	}
	if _, err := bcrypt.Cost([]byte(cfg.SharedPassHash)); err != nil {
		log.Fatal("[FATAL] SHARED_PASSWORD_HASH is not a valid bcrypt hash.")
	}
	if cfg.Backend != "postgres" && cfg.Backend != "file" {
		log.Fatalf("[FATAL] BACKEND must be 'postgres' or 'file', got %q", cfg.Backend)
	}
	if cfg.Backend == "postgres" && cfg.DatabaseDSN == "host=localhost user=postgres password=postgres dbname=oktodeck port=5432 sslmode=disable" {
		log.Println("[WARN] DATABASE_DSN is using the default value; set your own Postgres connection for production.")
	}
	if cfg.CORSOrigins == "http://localhost:5173" {
		log.Println("[WARN] CORS_ALLOWED_ORIGINS is using the default value; set your own domain for production.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
