package config

import (
	"os"
	"strings"
	"time"
)

// Config holds every environment-driven setting. It is loaded once in main
// and injected into constructors; handlers never read the environment.
type Config struct {
	Port           string
	Env            string
	MongoURI       string
	MongoDB        string
	JWTSecret      string
	AdminPassword  string
	TokenTTL       time.Duration
	AllowedOrigins []string
}

func Load() Config {
	return Config{
		Port:          getEnv("PORT", "3002"),
		Env:           getEnv("ENV", "development"),
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:       getEnv("MONGO_DB", "petshop"),
		JWTSecret:     getEnv("JWT_SECRET", "your_jwt_secret_key"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
		TokenTTL:      getDuration("TOKEN_TTL", 12*time.Hour),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS",
			"http://localhost:3000,https://dhanushvel123.github.io")),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}

func splitList(val string) []string {
	parts := strings.Split(val, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
