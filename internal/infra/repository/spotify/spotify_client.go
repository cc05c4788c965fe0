package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	genresPath = "recommendations/available-genre-seeds"
	searchPath = "search"

	DefaultSearchQuery = "post malone"
	DefaultSearchType  = "artist"
)

type SpotifyClient struct {
	tracer     trace.Tracer
	logger     logrus.FieldLogger
	httpClient *http.Client
	apiURL     string
	session    *Session
}

// New checks the credentials and obtains the first token before returning.
func New(ctx context.Context, config *SpotifyClientConfig) (*SpotifyClient, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}

	session := newSession(config)
	if err := session.Renew(ctx); err != nil {
		return nil, err
	}

	apiURL := config.apiURL
	if !strings.HasSuffix(apiURL, "/") {
		apiURL += "/"
	}

	return &SpotifyClient{
		tracer:     config.tracer,
		logger:     config.logger,
		httpClient: config.httpClient,
		apiURL:     apiURL,
		session:    session,
	}, nil
}

func (client *SpotifyClient) Session() *Session {
	return client.session
}

// Genres lists the genre seeds available for recommendations.
func (client *SpotifyClient) Genres(ctx context.Context) (map[string]any, error) {
	ctx, span := client.tracer.Start(ctx, "SpotifyClient.Genres")
	defer span.End()

	result, err := client.get(ctx, genresPath, nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	return result, nil
}

// Search queries the catalog. searchType is a comma separated list of
// artist, album, track, playlist, show and episode; it is passed through as is.
func (client *SpotifyClient) Search(ctx context.Context, query string, searchType string) (map[string]any, error) {
	ctx, span := client.tracer.Start(ctx, "SpotifyClient.Search")
	defer span.End()

	if query == "" {
		query = DefaultSearchQuery
	}
	if searchType == "" {
		searchType = DefaultSearchType
	}

	span.SetAttributes(
		attribute.String("query", query),
		attribute.String("type", searchType),
	)

	result, err := client.get(ctx, searchPath, url.Values{
		"q":    {query},
		"type": {searchType},
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	return result, nil
}

func (client *SpotifyClient) get(ctx context.Context, path string, params url.Values) (map[string]any, error) {
	header, err := client.session.Header(ctx)
	if err != nil {
		return nil, fmt.Errorf("client.session.Header: %w", err)
	}

	endpoint := client.apiURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &RequestError{Err: err}
	}
	req.Header = header

	resp, err := client.httpClient.Do(req)
	if err != nil {
		return nil, &RequestError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		client.logger.WithFields(logrus.Fields{
			"path":   path,
			"status": resp.StatusCode,
		}).Warn("Spotify API request failed")
		return nil, &RequestError{StatusCode: resp.StatusCode, Body: body}
	}

	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, &RequestError{
			StatusCode: resp.StatusCode,
			Body:       body,
			Err:        fmt.Errorf("decode response: %w", err),
		}
	}

	return result, nil
}

// String summarizes the token age and the available operations.
func (client *SpotifyClient) String() string {
	return fmt.Sprintf(`SpotifyClient
  Time elapsed: %s
  Available methods:
    Genres - list all genre seeds
    Search - search for artists, albums, tracks, playlists, shows and episodes`,
		formatElapsed(client.session.Elapsed()))
}

func formatElapsed(d time.Duration) string {
	elapsed := int(d.Round(time.Second) / time.Second)
	if elapsed > 60 {
		return fmt.Sprintf("%d minutes %d seconds", elapsed/60, elapsed%60)
	}

	return fmt.Sprintf("%d seconds", elapsed)
}
