package spotify_test

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/angristan/spotify-catalog/internal/infra/repository/spotify"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

const (
	testClientID     = "client-id"
	testClientSecret = "client-secret"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

// tokenServer issues token-1, token-2, ... and counts the grants it serves.
type tokenServer struct {
	*httptest.Server
	calls  atomic.Int32
	reject atomic.Bool
}

func newTokenServer(t *testing.T) *tokenServer {
	ts := &tokenServer{}
	ts.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := ts.calls.Add(1)

		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Basic "+base64.StdEncoding.EncodeToString([]byte(testClientID+":"+testClientSecret)), r.Header.Get("Authorization"))
		if assert.NoError(t, r.ParseForm()) {
			assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
		}

		w.Header().Set("Content-Type", "application/json")
		if ts.reject.Load() {
			w.WriteHeader(http.StatusBadRequest)
			io.WriteString(w, `{"error":"invalid_client","error_description":"Invalid client secret"}`)
			return
		}

		fmt.Fprintf(w, `{"access_token":"token-%d","token_type":"Bearer","expires_in":3600}`, n)
	}))
	t.Cleanup(ts.Close)

	return ts
}

func newAPIServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return server
}

func discardLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return logger
}

func newTestConfig(clientID, clientSecret, tokenURL, apiURL string, clock *fakeClock) *spotify.SpotifyClientConfig {
	return spotify.NewSpotifyClientConfig(
		clientID,
		clientSecret,
		http.DefaultClient,
		otel.Tracer("test"),
		spotify.WithEndpoints(tokenURL, apiURL),
		spotify.WithClock(clock.Now),
		spotify.WithLogger(discardLogger()),
	)
}

func newTestClient(t *testing.T, tokens *tokenServer, api *httptest.Server, clock *fakeClock) *spotify.SpotifyClient {
	client, err := spotify.New(context.Background(), newTestConfig(testClientID, testClientSecret, tokens.URL, api.URL+"/v1/", clock))
	require.NoError(t, err)

	return client
}
