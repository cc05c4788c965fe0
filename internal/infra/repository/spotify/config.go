package spotify

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"go.opentelemetry.io/otel/trace"
)

const (
	// TokenURL is the client-credentials token endpoint.
	TokenURL = spotifyauth.TokenURL
	// APIURL is the Web API root every query path is appended to.
	APIURL = "https://api.spotify.com/v1/"

	// TokenLifetime is how long an issued token is trusted before renewal.
	TokenLifetime = time.Hour
)

type SpotifyClientConfig struct {
	clientID     string
	clientSecret string
	httpClient   *http.Client
	tracer       trace.Tracer

	tokenURL string
	apiURL   string
	now      func() time.Time
	logger   logrus.FieldLogger
}

type Option func(*SpotifyClientConfig)

// WithEndpoints points the client at other token and API endpoints.
func WithEndpoints(tokenURL, apiURL string) Option {
	return func(c *SpotifyClientConfig) {
		c.tokenURL = tokenURL
		c.apiURL = apiURL
	}
}

// WithClock replaces time.Now for token age checks.
func WithClock(now func() time.Time) Option {
	return func(c *SpotifyClientConfig) {
		c.now = now
	}
}

func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *SpotifyClientConfig) {
		c.logger = logger
	}
}

func NewSpotifyClientConfig(
	clientID string,
	clientSecret string,
	httpClient *http.Client,
	tracer trace.Tracer,
	opts ...Option,
) *SpotifyClientConfig {
	config := &SpotifyClientConfig{
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient:   httpClient,
		tracer:       tracer,
		tokenURL:     TokenURL,
		apiURL:       APIURL,
		now:          time.Now,
		logger:       logrus.StandardLogger(),
	}

	for _, opt := range opts {
		opt(config)
	}

	if config.httpClient == nil {
		config.httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return config
}

func (c *SpotifyClientConfig) validate() error {
	if c.clientID == "" {
		return &ConfigurationError{Field: "client ID"}
	}
	if c.clientSecret == "" {
		return &ConfigurationError{Field: "client secret"}
	}

	return nil
}
