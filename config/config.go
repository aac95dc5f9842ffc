package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	MongoURI          string
	DatabaseName      string
	AccessTokenSecret string
	StripeSecretKey   string
	Environment       string
}

// Load reads configuration once at startup. A missing .env file is fine,
// plain environment variables are used instead.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Port:              os.Getenv("PORT"),
		MongoURI:          os.Getenv("MONGO_URI"),
		DatabaseName:      os.Getenv("DATABASE_NAME"),
		AccessTokenSecret: os.Getenv("ACCESS_TOKEN_SECRET"),
		StripeSecretKey:   os.Getenv("STRIPE_SECRET_KEY"),
		Environment:       os.Getenv("ENV"),
	}

	if cfg.Port == "" {
		cfg.Port = "5000"
	}
	if cfg.DatabaseName == "" {
		cfg.DatabaseName = "doctors_portal"
	}
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	if cfg.MongoURI == "" {
		user := os.Getenv("DATABASE_USER")
		password := os.Getenv("DATABASE_PASSWORD")
		host := os.Getenv("DATABASE_HOST")
		if user == "" || password == "" || host == "" {
			return nil, fmt.Errorf("MONGO_URI or DATABASE_USER/DATABASE_PASSWORD/DATABASE_HOST must be set")
		}
		cfg.MongoURI = fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority", user, password, host)
	}

	if cfg.AccessTokenSecret == "" {
		return nil, fmt.Errorf("ACCESS_TOKEN_SECRET is required but not set")
	}
	if cfg.StripeSecretKey == "" {
		return nil, fmt.Errorf("STRIPE_SECRET_KEY is required but not set")
	}

	return cfg, nil
}
