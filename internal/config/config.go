package config

import (
	"fmt"
	"os"
	"strings"
)

type Config struct {
	Port                 string
	MongoConnectionURI   string
	DatabaseName         string
	Environment          string
	LogLevel             string
	CORSAllowOrigins     []string
	CORSAllowMethods     []string
	CORSAllowHeaders     []string
	CORSAllowCredentials bool
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:                 getEnvWithDefault("PORT", "8080"),
		MongoConnectionURI:   os.Getenv("MONGO_CONNECTION_STRING"),
		DatabaseName:         getEnvWithDefault("DATABASE_NAME", "event_management_db"),
		Environment:          getEnvWithDefault("ENVIRONMENT", "development"),
		LogLevel:             getEnvWithDefault("LOG_LEVEL", "info"),
		CORSAllowOrigins:     getEnvList("CORS_ALLOW_ORIGINS", "*"),
		CORSAllowMethods:     getEnvList("CORS_ALLOW_METHODS", "GET,POST,PUT,DELETE,OPTIONS"),
		CORSAllowHeaders:     getEnvList("CORS_ALLOW_HEADERS", "Origin,Content-Type,Authorization,X-Request-ID"),
		CORSAllowCredentials: getEnvWithDefault("CORS_ALLOW_CREDENTIALS", "true") == "true",
	}

	// Validate required fields
	if cfg.MongoConnectionURI == "" {
		return nil, fmt.Errorf("MONGO_CONNECTION_STRING is required")
	}

	return cfg, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvList(key, defaultValue string) []string {
	raw := getEnvWithDefault(key, defaultValue)
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
