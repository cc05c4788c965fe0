package catalog

import (
	"context"
	"time"
)

type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

type CatalogClient interface {
	Genres(ctx context.Context) (map[string]any, error)
	Search(ctx context.Context, query string, searchType string) (map[string]any, error)
	String() string
}
