package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServiceName   string
	JaegerAddress string
	EmailUser     string
	EmailPass     string
	EmailFrom     string
	AdminEmail    string
	SMTPHost      string
	SMTPPort      int
	MongoURI      string
	SiteURL       string
	Environment   string
	AdminKeyHash  string
	RedisHost     string
	RedisPort     string
	LogFile       string
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		fmt.Println("No .env file found, continuing with environment variables...")
	}

	cfg := &Config{
		ServiceName:   getEnv("SERVICE_NAME", "travelworld-backend"),
		JaegerAddress: getEnv("JAEGER_ADDRESS", "http://localhost:14268/api/traces"),
		EmailUser:     os.Getenv("EMAIL_USER"),
		EmailPass:     os.Getenv("EMAIL_PASS"),
		EmailFrom:     os.Getenv("EMAIL_FROM"),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		SMTPHost:      getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:      getEnvInt("SMTP_PORT", 587),
		MongoURI:      os.Getenv("MONGO_DB_URI"),
		SiteURL:       getEnv("SITE_URL", "http://localhost:4200"),
		Environment:   getEnv("APP_ENV", "development"),
		AdminKeyHash:  os.Getenv("ADMIN_KEY_HASH"),
		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		LogFile:       getEnv("LOG_FILE", "logs/travelworld.log"),
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_DB_URI is required")
	}
	if !strings.HasPrefix(cfg.MongoURI, "mongodb://") && !strings.HasPrefix(cfg.MongoURI, "mongodb+srv://") {
		return nil, fmt.Errorf("MONGO_DB_URI must start with mongodb:// or mongodb+srv://")
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
