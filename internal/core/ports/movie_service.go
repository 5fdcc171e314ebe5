package ports

import (
	"context"

	"github.com/cinevault/catalog-api/internal/core/domain"
)

// CreateMovieInput carries all data needed to add a catalog entry.
type CreateMovieInput struct {
	Title       string
	Description string
	Rating      float64
	Year        string
	Duration    string
	Poster      string
	Backdrop    string
	// ActorID is the id claim of the authenticated user creating the entry.
	ActorID string
}

// ListMoviesInput carries all parameters for the list endpoint.
type ListMoviesInput struct {
	Search string
	Sort   string
	Page   int
	Limit  int
}

// ListMoviesResult is returned by List.
type ListMoviesResult struct {
	Movies     []*domain.Movie
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// MovieService defines use-case operations for the catalog.
type MovieService interface {
	List(ctx context.Context, input ListMoviesInput) (*ListMoviesResult, error)
	Create(ctx context.Context, input CreateMovieInput) (*domain.Movie, error)
	// SaveExternal adds an entry sourced from a third-party movie API.
	// It rejects duplicate titles and normalizes missing fields.
	SaveExternal(ctx context.Context, input CreateMovieInput) (*domain.Movie, error)
	Delete(ctx context.Context, id string) error
}
