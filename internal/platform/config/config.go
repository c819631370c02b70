package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config groups everything the service reads from the environment so main
// stays lean.
type Config struct {
	Addr string

	Kafka    Kafka
	Redis    Redis
	Postgres Postgres
	Upstream Upstream

	// DocumentCacheTTL bounds how long fetched documents are reused.
	DocumentCacheTTL time.Duration
	// LookupTimeout caps each external registry/geography lookup.
	LookupTimeout time.Duration
}

// Kafka captures consumer group configuration.
type Kafka struct {
	Brokers       []string
	Group         string
	TopicReceived string
	TopicSent     string
}

// Redis captures connection settings for the document cache. An empty URL
// means redis is not configured and the in-memory cache is used instead.
type Redis struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Postgres captures the decision log database settings. An empty DSN means
// decisions are kept in memory only.
type Postgres struct {
	DSN string
}

// Upstream holds base URLs for the external collaborators.
type Upstream struct {
	DocumentAPI   string
	PersonAPI     string
	LegacyCaseAPI string
	OrgUnitAPI    string
	TokenURL      string
	ClientID      string
	ClientSecret  string
}

// FromEnv builds the configuration from environment variables with
// local-development defaults.
func FromEnv() Config {
	return Config{
		Addr: envOr("SEDROUTING_ADDR", ":8080"),
		Kafka: Kafka{
			Brokers:       strings.Split(envOr("KAFKA_BROKERS", "localhost:9092"), ","),
			Group:         envOr("KAFKA_GROUP", "sedrouting"),
			TopicReceived: envOr("KAFKA_TOPIC_RECEIVED", "eessi-sed-received"),
			TopicSent:     envOr("KAFKA_TOPIC_SENT", "eessi-sed-sent"),
		},
		Redis: Redis{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     envInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  envDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDuration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Postgres: Postgres{
			DSN: os.Getenv("POSTGRES_DSN"),
		},
		Upstream: Upstream{
			DocumentAPI:   envOr("DOCUMENT_API_URL", "http://localhost:9400"),
			PersonAPI:     envOr("PERSON_API_URL", "http://localhost:9401"),
			LegacyCaseAPI: envOr("LEGACY_CASE_API_URL", "http://localhost:9402"),
			OrgUnitAPI:    envOr("ORG_UNIT_API_URL", "http://localhost:9403"),
			TokenURL:      os.Getenv("TOKEN_URL"),
			ClientID:      os.Getenv("CLIENT_ID"),
			ClientSecret:  os.Getenv("CLIENT_SECRET"),
		},
		DocumentCacheTTL: envDuration("DOCUMENT_CACHE_TTL", 5*time.Minute),
		LookupTimeout:    envDuration("LOOKUP_TIMEOUT", 4*time.Second),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
