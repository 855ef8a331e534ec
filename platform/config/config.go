package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/joho/godotenv/autoload"
)

type Config struct {
	HTTPAddr      string
	SocketAddr    string
	RedisURL      string
	DBUser        string
	DBAddr        string
	DBPassword    string
	DBName        string
	JWTSecret     string
	CORSOrigins   []string
	AuctionWindow time.Duration
	StoreRetries  int
	LogLevel      string
	LogFormat     string
}

// Load reads the environment, falling back to development defaults.
func Load() Config {
	return Config{
		HTTPAddr:      env("HTTP_ADDR", ":4101"),
		SocketAddr:    env("SOCKET_ADDR", ":8000"),
		RedisURL:      env("REDIS_URL", "localhost:6379"),
		DBUser:        env("DB_USER", "postgres"),
		DBAddr:        env("DB_ADDR", "localhost:5432"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        env("DB_NAME", "monopoly"),
		JWTSecret:     env("JWT_SECRET", "secret"),
		CORSOrigins:   list(env("CORS_ORIGINS", "http://localhost:3000")),
		AuctionWindow: duration("AUCTION_WINDOW", 10*time.Second),
		StoreRetries:  number("STORE_RETRIES", 5),
		LogLevel:      env("LOG_LEVEL", "info"),
		LogFormat:     env("LOG_FORMAT", "text"),
	}
}

func env(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func list(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func duration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func number(key string, fallback int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
