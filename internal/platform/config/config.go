package config

import (
	"os"
	"strconv"
	"time"
)

// Server captures process-level configuration. All values come from the
// environment so main stays lean.
type Server struct {
	Addr string

	// DatabaseURL selects the Postgres stores; empty means in-memory.
	DatabaseURL string

	// RedisURL selects the shared Redis rate limit counter; empty means the
	// limiter derives counts from the activity log.
	RedisURL string

	// KafkaBrokers enables the activity stream publisher; empty disables it.
	KafkaBrokers string
	KafkaTopic   string

	JWTSigningKey string

	RateLimitMaxAttempts int
	RateLimitWindow      time.Duration
}

// FromEnv builds a Server config from environment variables.
func FromEnv() Server {
	addr := os.Getenv("TRUSTGATE_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	topic := os.Getenv("KAFKA_ACTIVITY_TOPIC")
	if topic == "" {
		topic = "trustgate.activity"
	}

	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Development default; must be overridden in production.
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	return Server{
		Addr:                 addr,
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		RedisURL:             os.Getenv("REDIS_URL"),
		KafkaBrokers:         os.Getenv("KAFKA_BROKERS"),
		KafkaTopic:           topic,
		JWTSigningKey:        jwtSigningKey,
		RateLimitMaxAttempts: envInt("RATE_LIMIT_MAX_ATTEMPTS", 0),
		RateLimitWindow:      envDuration("RATE_LIMIT_WINDOW", 0),
	}
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}
