package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	DBDSN   string
	LogFile string
}

func Load() Config {
	// Best-effort .env; real env vars win.
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "harborview.db" // sqlite file in project root
	}
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./harborview.log"
	}

	cfg := Config{Port: port, DBDSN: dsn, LogFile: logFile}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s", cfg.Port, cfg.DBDSN, cfg.LogFile)
	return cfg
}
