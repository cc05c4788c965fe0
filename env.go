package main

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Env struct {
	SpotifyClientID     string `env:"SPOTIFY_CLIENT_ID" env-required:"true"`
	SpotifyClientSecret string `env:"SPOTIFY_CLIENT_SECRET" env-required:"true"`

	RedisURL       string        `env:"REDIS_URL" env-required:"true"`
	GenresCacheTTL time.Duration `env:"GENRES_CACHE_TTL" env-default:"24h"`

	Port string `env:"PORT" env-default:"1323"`

	LogFormat string `env:"LOG_FORMAT" env-default:"json"`
	LogLevel  string `env:"LOG_LEVEL" env-default:"info"`

	TracingEnabled bool   `env:"TRACING_ENABLED" env-default:"true"`
	OTLPEndpoint   string `env:"OTLP_ENDPOINT" env-default:"tempo:4318"`
}

var env Env

func LoadEnv() error {
	err := godotenv.Load()
	if err != nil {
		logrus.WithError(err).Warn("Failed to load env variables from file")
	}

	return cleanenv.ReadEnv(&env)
}

func GetEnv() *Env {
	return &env
}

func configureLogger(config *Env) {
	switch config.LogFormat {
	case "text":
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	level, err := logrus.ParseLevel(config.LogLevel)
	if err != nil {
		logrus.WithError(err).Warnf("Unknown log level %q, keeping %s", config.LogLevel, logrus.GetLevel())
		return
	}
	logrus.SetLevel(level)
}
