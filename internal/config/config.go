package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort      string
	DBDriver        string
	DBDSN           string
	RedisAddr       string
	RedisDB         int
	RedisPass       string
	JWTSecret       string
	SessionSecret   string
	CookieSecure    bool
	AMQPURL         string
	DisplayTimezone string
	SwaggerHost     string
	ResetDB         bool
}

// Load builds Config from environment with sensible defaults.
// A .env file in the working directory is read first when present.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: ignoring .env: %v", err)
	}

	return &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		DBDriver:        getEnv("DB_DRIVER", "sqlite"),
		DBDSN:           getEnv("DB_DSN", "instance/canteen.db"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:         getEnvInt("REDIS_DB", 0),
		RedisPass:       os.Getenv("REDIS_PASSWORD"),
		JWTSecret:       getEnv("JWT_SECRET", "change-me"),
		SessionSecret:   getEnv("SESSION_SECRET", "change-me-too"),
		CookieSecure:    getEnvBool("COOKIE_SECURE", false),
		AMQPURL:         os.Getenv("AMQP_URL"),
		DisplayTimezone: getEnv("DISPLAY_TIMEZONE", "Asia/Almaty"),
		SwaggerHost:     os.Getenv("SWAGGER_HOST"),
		ResetDB:         getEnvBool("RESET_DB", false),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}
