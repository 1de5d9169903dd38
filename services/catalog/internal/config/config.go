package config

import (
	"os"

	pkgconfig "github.com/dmarkin/webshop/pkg/config"
)

type Config struct {
	ServiceName string
	ServerPort  int

	DatabaseURL string

	KafkaBrokers []string

	ESURL      string
	ESUser     string
	ESPassword string
	ESIndex    string

	JWTSecret []byte
}

func Load() *Config {
	cfg := &Config{
		ServiceName: pkgconfig.EnvDefault("SERVICE_NAME", "catalog"),
		ServerPort:  pkgconfig.EnvIntDefault("SERVER_PORT", 8080),

		DatabaseURL: os.Getenv("DATABASE_URL"),

		KafkaBrokers: pkgconfig.CSV(os.Getenv("KAFKA_BROKERS")),

		ESURL:      os.Getenv("ES_URL"),
		ESUser:     os.Getenv("ES_USER"),
		ESPassword: os.Getenv("ES_PASSWORD"),
		ESIndex:    pkgconfig.EnvDefault("ES_INDEX", "products"),

		JWTSecret: []byte(os.Getenv("JWT_SECRET")),
	}

	pkgconfig.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")

	return cfg
}
