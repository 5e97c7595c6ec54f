package config

import (
	"os"
	"strings"

	pstrings "ferry/pkg/platform/strings"
)

// Server captures process-level configuration.
type Server struct {
	Addr          string
	DatabaseURL   string
	RedisAddr     string
	KafkaBrokers  []string
	AuditTopic    string
	JWTSigningKey string
	// AccuserMayDelete lets the original accuser delete their own accusation
	// in addition to superusers. Stricter deployments leave it off.
	AccuserMayDelete bool
	OTLPEndpoint     string
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("FERRY_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Development default; override in production.
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	auditTopic := os.Getenv("AUDIT_TOPIC")
	if auditTopic == "" {
		auditTopic = "ferry.court.audit"
	}

	return Server{
		Addr:             addr,
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		KafkaBrokers:     pstrings.DedupeAndTrim(strings.Split(os.Getenv("KAFKA_BROKERS"), ",")),
		AuditTopic:       auditTopic,
		JWTSigningKey:    jwtSigningKey,
		AccuserMayDelete: os.Getenv("ACCUSER_MAY_DELETE") == "true",
		OTLPEndpoint:     os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
	}
}
