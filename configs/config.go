package config

import (
	"os"
	"strings"
)

type ServerConfig struct {
	Port        string
	DBPath      string
	CORSOrigins []string
}

type EmailConfig struct {
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	AWSRegion          string
	SenderEmail        string
}

func LoadServerConfig() ServerConfig {
	origins := getEnvOrDefault("CORS_ORIGINS", "http://localhost:3000,http://localhost:3001")

	return ServerConfig{
		Port:        getEnvOrDefault("PORT", "8000"),
		DBPath:      getEnvOrDefault("COFFEE_DB_PATH", "coffee_shop.db"),
		CORSOrigins: strings.Split(origins, ","),
	}
}

func LoadEmailConfig() EmailConfig {
	return EmailConfig{
		AWSAccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		AWSRegion:          getEnvOrDefault("AWS_REGION", "us-east-1"),
		SenderEmail:        os.Getenv("AWS_SENDER_ADDRESS"),
	}
}

// Enabled reports whether order confirmation emails should be sent.
// Leaving AWS_SENDER_ADDRESS unset keeps the service fully local.
func (c EmailConfig) Enabled() bool {
	return c.SenderEmail != ""
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
