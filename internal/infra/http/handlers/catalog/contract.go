package catalog

import "context"

type CatalogService interface {
	Genres(ctx context.Context) (map[string]any, error)
	Search(ctx context.Context, query string, searchType string) (map[string]any, error)
	Status() string
}
