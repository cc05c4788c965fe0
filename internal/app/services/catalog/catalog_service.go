package catalog

import (
	"errors"
	"time"

	"go.opentelemetry.io/otel/trace"
)

type CatalogService struct {
	tracer        trace.Tracer
	catalogClient CatalogClient
	cache         Cache
	genresTTL     time.Duration
}

func New(
	tracer trace.Tracer,
	catalogClient CatalogClient,
	cache Cache,
	genresTTL time.Duration,
) CatalogService {
	return CatalogService{
		tracer:        tracer,
		catalogClient: catalogClient,
		cache:         cache,
		genresTTL:     genresTTL,
	}
}

var (
	ErrEmptyQuery      = errors.New("query is required")
	ErrEmptySearchType = errors.New("search type is required")
	ErrCatalogClient   = errors.New("spotify client error")
)

// Status returns the client's diagnostic summary.
func (s CatalogService) Status() string {
	return s.catalogClient.String()
}
