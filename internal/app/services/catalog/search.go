package catalog

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Search forwards the query to the catalog. Results are never cached.
func (s CatalogService) Search(ctx context.Context, query string, searchType string) (map[string]any, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.Search")
	defer span.End()

	if searchType == "" {
		return nil, ErrEmptySearchType
	}

	// gin hands over the path already decoded, the client encodes it again
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	span.SetAttributes(
		attribute.String("query", query),
		attribute.String("type", searchType),
	)

	result, err := s.catalogClient.Search(ctx, query, searchType)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("%w: %w", ErrCatalogClient, err)
	}

	return result, nil
}
