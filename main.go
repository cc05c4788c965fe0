package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/angristan/spotify-catalog/internal/app/services/catalog"
	server "github.com/angristan/spotify-catalog/internal/infra/http"
	handler "github.com/angristan/spotify-catalog/internal/infra/http/handlers/catalog"
	"github.com/angristan/spotify-catalog/internal/infra/repository/cache/redis"
	"github.com/angristan/spotify-catalog/internal/infra/repository/spotify"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
)

func main() {
	err := LoadEnv()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load environment variables")
	}

	config := GetEnv()
	configureLogger(config)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := setupTracing(ctx, config)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to set up tracing")
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logrus.WithError(err).Error("Failed to flush traces")
		}
	}()

	tracer := otel.Tracer(serviceName)

	spotifyClient, err := spotify.New(ctx, spotify.NewSpotifyClientConfig(
		config.SpotifyClientID,
		config.SpotifyClientSecret,
		&http.Client{Timeout: 30 * time.Second},
		tracer,
	))
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create Spotify client")
	}
	logrus.Debug(spotifyClient.String())

	redisClient, err := redis.NewClient(config.RedisURL)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to parse Redis URL")
	}
	defer redisClient.Close()

	genresCache := redis.NewCache(redisClient, config.GenresCacheTTL)
	if err := genresCache.Ping(ctx); err != nil {
		logrus.WithError(err).Warn("Redis is unreachable, genre seeds will not be cached")
	}

	catalogService := catalog.New(tracer, spotifyClient, genresCache, config.GenresCacheTTL)
	catalogHandler := handler.New(tracer, logrus.StandardLogger(), catalogService)

	srv, err := server.New(server.NewConfig(config.Port, false), catalogHandler)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create server")
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		logrus.Info("Shutting down server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logrus.WithError(err).Error("Failed to shut down server")
		}
	}()

	logrus.WithField("addr", srv.Addr).Info("Starting server")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logrus.WithError(err).Fatal("Server stopped")
	}
}
