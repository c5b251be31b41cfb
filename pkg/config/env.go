// Env loader
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv          string
	Port            string
	DBHost          string
	DBPort          string
	DBName          string
	DBUser          string
	DBPassword      string
	DBSchema        string
	JWTSecret       string
	QuranAPIBaseURL string
	SmtpFrom        string
	SmtpPassword    string
	SmtpHost        string
	SmtpPort        string
	AllowedOrigins  string
}

// LoadConfig loads environment variables from the .env file
func LoadConfig() *Config {

	appEnv := os.Getenv("APP_ENV")

	switch appEnv {
	case "production":
		if err := godotenv.Load(".env.production"); err == nil {
			fmt.Println("Loaded .env.production")
		}
	default:
		if err := godotenv.Load(".env.development"); err == nil {
			fmt.Println("Loaded .env.development")
		}
	}

	cfg := &Config{
		AppEnv:          getEnv("APP_ENV", "development"),
		Port:            getEnv("PORT", "8080"),
		DBHost:          getEnv("QQ_DB_HOST", "localhost"),
		DBPort:          getEnv("QQ_DB_PORT", "5432"),
		DBName:          getEnv("QQ_DB_DATABASE", "quran_quest"),
		DBUser:          getEnv("QQ_DB_USERNAME", "postgres"),
		DBPassword:      getEnv("QQ_DB_PASSWORD", ""),
		DBSchema:        getEnv("QQ_DB_SCHEMA", "public"),
		JWTSecret:       getEnv("JWT_SECRET", ""),
		QuranAPIBaseURL: getEnv("QURAN_API_BASE_URL", "https://quranapi.pages.dev/api"),
		SmtpFrom:        getEnv("SMTP_FROM", ""),
		SmtpPassword:    getEnv("SMTP_PASSWORD", ""),
		SmtpHost:        getEnv("SMTP_HOST", "smtp.gmail.com"),
		SmtpPort:        getEnv("SMTP_PORT", "587"),
		AllowedOrigins:  getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func GetAppEnv() string {
	if value, exists := os.LookupEnv("APP_ENV"); exists {
		return value
	}
	return "development"
}
