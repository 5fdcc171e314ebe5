package handler

import (
	"time"

	"github.com/cinevault/catalog-api/internal/core/domain"
	"github.com/cinevault/catalog-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createMovieRequest, actorID string) ports.CreateMovieInput {
	return ports.CreateMovieInput{
		Title:       req.Title,
		Description: req.Description,
		Rating:      req.Rating,
		Year:        req.Year,
		Duration:    req.Duration,
		Poster:      req.Poster,
		Backdrop:    req.Backdrop,
		ActorID:     actorID,
	}
}

// --- Service result → HTTP response ---

func toMovieResponse(m *domain.Movie) movieResponse {
	return movieResponse{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Rating:      m.Rating,
		Year:        m.Year,
		Duration:    m.Duration,
		Poster:      m.Poster,
		Backdrop:    m.Backdrop,
		CreatedBy:   m.CreatedBy,
		CreatedAt:   m.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toListResponse(r *ports.ListMoviesResult) listMoviesResponse {
	movies := make([]movieResponse, len(r.Movies))
	for i, m := range r.Movies {
		movies[i] = toMovieResponse(m)
	}
	return listMoviesResponse{
		Movies:      movies,
		TotalPages:  r.TotalPages,
		CurrentPage: r.Page,
	}
}
