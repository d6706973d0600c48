package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port        string
	Env         string
	MetricsPort string

	PostgresConnStr string

	KafkaBrokers          string
	PostEventsTopic       string
	PostEventsGroup       string
	ContentEventsTopic    string
	ContentRoutingPrefix  string
	BrokerConnectRetries  int
	BrokerConnectDelaySec int

	JWTSecret string

	DefaultPageSize int
	MaxPageSize     int
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		MetricsPort: getEnv("METRICS_PORT", "9090"),

		PostgresConnStr: getEnv("POSTGRES_CONN_STR", ""),

		KafkaBrokers:          getEnv("KAFKA_BROKERS", "localhost:9092"),
		PostEventsTopic:       getEnv("POST_EVENTS_TOPIC", "post-events"),
		PostEventsGroup:       getEnv("POST_EVENTS_GROUP", "content-engagement"),
		ContentEventsTopic:    getEnv("CONTENT_EVENTS_TOPIC", "content-events"),
		ContentRoutingPrefix:  getEnv("CONTENT_ROUTING_PREFIX", "content"),
		BrokerConnectRetries:  getEnvInt("BROKER_CONNECT_RETRIES", 5),
		BrokerConnectDelaySec: getEnvInt("BROKER_CONNECT_DELAY_SEC", 5),

		JWTSecret: getEnv("JWT_SECRET", "supersecretjwtkey"),

		DefaultPageSize: getEnvInt("DEFAULT_PAGE_SIZE", 20),
		MaxPageSize:     getEnvInt("MAX_PAGE_SIZE", 100),
	}
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
