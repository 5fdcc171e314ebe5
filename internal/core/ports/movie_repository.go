package ports

import (
	"context"

	"github.com/cinevault/catalog-api/internal/core/domain"
)

// ListMoviesFilter carries all query parameters for listing catalog entries.
type ListMoviesFilter struct {
	Search string           // optional: case-insensitive substring on title or description
	Sort   domain.MovieSort // unknown values fall back to createdAt descending
	Page   int              // 1-based
	Limit  int              // max rows per page (capped at 100 by service)
}

// MovieRepository defines persistence operations for catalog entries.
type MovieRepository interface {
	Create(ctx context.Context, m *domain.Movie) (*domain.Movie, error)
	FindByTitle(ctx context.Context, title string) (*domain.Movie, error)
	// List returns a page of entries matching filter and the total match count.
	List(ctx context.Context, filter ListMoviesFilter) ([]*domain.Movie, int64, error)
	Delete(ctx context.Context, id string) error
}
