package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL  string
	Environment  string
	ListenAddr   string
	GoalsFile    string
	TeachersFile string
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		Environment:  os.Getenv("ENV"),
		ListenAddr:   os.Getenv("LISTEN_ADDR"),
		GoalsFile:    os.Getenv("GOALS_FILE"),
		TeachersFile: os.Getenv("TEACHERS_FILE"),
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	if cfg.GoalsFile == "" {
		cfg.GoalsFile = "goals.json"
	}
	if cfg.TeachersFile == "" {
		cfg.TeachersFile = "teachers.json"
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required but not set")
	}

	return cfg, nil
}
