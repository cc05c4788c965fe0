package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/angristan/spotify-catalog/internal/infra/repository/cache/redis"
	"go.opentelemetry.io/otel/codes"
)

const genresCacheKey = "spotify:genres"

// Genres returns the available genre seeds. Seeds rarely change, so the
// provider payload is kept in the cache for genresTTL.
func (s CatalogService) Genres(ctx context.Context) (map[string]any, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.Genres")
	defer span.End()

	val, err := s.cache.Get(ctx, genresCacheKey)
	switch {
	case err == nil && val != "":
		var cachedResult map[string]any
		if err := json.Unmarshal([]byte(val), &cachedResult); err == nil {
			span.AddEvent("Cache hit")
			return cachedResult, nil
		}
	case err != nil && !errors.Is(err, redis.ErrCacheMiss):
		span.RecordError(err)
	}

	result, err := s.catalogClient.Genres(ctx)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("%w: %w", ErrCatalogClient, err)
	}

	marshaledResult, err := json.Marshal(result)
	if err != nil {
		span.RecordError(err)
		return result, nil
	}

	err = s.cache.Set(ctx, genresCacheKey, marshaledResult, s.genresTTL)
	if err != nil {
		span.RecordError(err)
	}

	return result, nil
}
