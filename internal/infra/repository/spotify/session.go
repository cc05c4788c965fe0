package spotify

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// Session owns the bearer token and the header set derived from it.
// It is safe for concurrent use.
type Session struct {
	tracer     trace.Tracer
	logger     logrus.FieldLogger
	config     clientcredentials.Config
	httpClient *http.Client
	now        func() time.Time

	mu       sync.Mutex
	issuedAt time.Time
	header   http.Header
}

func newSession(config *SpotifyClientConfig) *Session {
	return &Session{
		tracer: config.tracer,
		logger: config.logger,
		config: clientcredentials.Config{
			ClientID:     config.clientID,
			ClientSecret: config.clientSecret,
			TokenURL:     config.tokenURL,
			// Basic auth over the form-urlencoded ID and secret (RFC 6749 2.3.1).
			// Equals base64(id:secret) for URL-safe credentials such as Spotify's hex ones.
			AuthStyle: oauth2.AuthStyleInHeader,
		},
		httpClient: config.httpClient,
		now:        config.now,
	}
}

// Renew fetches a new token and replaces the current one. On failure the
// session is left unauthenticated.
func (s *Session) Renew(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.renew(ctx)
}

// RenewIfExpired renews the token when it is older than TokenLifetime or
// when the session holds no token.
func (s *Session) RenewIfExpired(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.renewIfExpired(ctx)
}

// Header returns a copy of the request headers for the current token,
// renewing the token first if it expired.
func (s *Session) Header(ctx context.Context) (http.Header, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.renewIfExpired(ctx); err != nil {
		return nil, err
	}

	return s.header.Clone(), nil
}

// Elapsed is the time since the current token was issued, zero when the
// session never held one.
func (s *Session) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.issuedAt.IsZero() {
		return 0
	}

	return s.now().Sub(s.issuedAt)
}

func (s *Session) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.header != nil
}

func (s *Session) renewIfExpired(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "Session.RenewIfExpired")
	defer span.End()

	span.AddEvent("Checking if Spotify token needs to be renewed")

	if s.header != nil {
		age := s.now().Sub(s.issuedAt)
		if age <= TokenLifetime {
			span.AddEvent("Token is still valid, no need to refresh", trace.WithAttributes(
				attribute.Float64("minutes_since_issue", age.Minutes()),
			))
			return nil
		}
	}

	return s.renew(ctx)
}

func (s *Session) renew(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "Session.Renew")
	defer span.End()

	ctx = context.WithValue(ctx, oauth2.HTTPClient, s.httpClient)

	token, err := s.config.Token(ctx)
	if err != nil {
		s.header = nil

		authErr := newAuthenticationError(err)
		span.RecordError(authErr)
		span.SetStatus(codes.Error, authErr.Error())
		s.logger.WithError(authErr).Error("Failed to obtain Spotify token")

		return authErr
	}

	header := http.Header{}
	header.Set("Content-Type", "application/json")
	header.Set("Accept", "application/json")
	header.Set("Authorization", "Bearer "+token.AccessToken)

	s.header = header
	s.issuedAt = s.now()

	span.AddEvent("Token refreshed")
	s.logger.WithField("expires_in", TokenLifetime.String()).Info("Spotify token issued")

	return nil
}

func newAuthenticationError(err error) *AuthenticationError {
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		return &AuthenticationError{
			Code:        retrieveErr.ErrorCode,
			Description: retrieveErr.ErrorDescription,
			Err:         err,
		}
	}

	return &AuthenticationError{Err: err}
}
