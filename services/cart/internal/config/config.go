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
}

func Load() *Config {
	cfg := &Config{
		ServiceName: pkgconfig.EnvDefault("SERVICE_NAME", "cart"),
		ServerPort:  pkgconfig.EnvIntDefault("SERVER_PORT", 8081),

		DatabaseURL: os.Getenv("DATABASE_URL"),

		KafkaBrokers: pkgconfig.CSV(os.Getenv("KAFKA_BROKERS")),
	}

	pkgconfig.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")

	return cfg
}
