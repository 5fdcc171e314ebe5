package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/cinevault/catalog-api/internal/api/metrics"
	"github.com/cinevault/catalog-api/internal/core/domain"
	"github.com/cinevault/catalog-api/internal/core/ports"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// ListCache abstracts the Redis-backed cache for list responses.
// A nil implementation is valid; all methods then become no-ops.
type ListCache interface {
	Get(ctx context.Context, filter ports.ListMoviesFilter) (*ports.ListMoviesResult, bool)
	Set(ctx context.Context, filter ports.ListMoviesFilter, result *ports.ListMoviesResult)
	Invalidate(ctx context.Context)
}

type MovieService struct {
	repo   ports.MovieRepository
	cache  ListCache
	logger zerolog.Logger
}

func NewMovieService(repo ports.MovieRepository, cache ListCache, logger zerolog.Logger) *MovieService {
	return &MovieService{repo: repo, cache: cache, logger: logger}
}

// List returns a filtered, sorted page of catalog entries plus the total
// page count. Page and limit are normalized before hitting storage.
func (s *MovieService) List(ctx context.Context, input ports.ListMoviesInput) (*ports.ListMoviesResult, error) {
	filter := ports.ListMoviesFilter{
		Search: input.Search,
		Sort:   domain.MovieSort(input.Sort),
		Page:   input.Page,
		Limit:  input.Limit,
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultPageSize
	}
	if filter.Limit > maxPageSize {
		filter.Limit = maxPageSize
	}

	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, filter); ok {
			metrics.CacheLookupsTotal.WithLabelValues("hit").Inc()
			return cached, nil
		}
		metrics.CacheLookupsTotal.WithLabelValues("miss").Inc()
	}

	start := time.Now()
	movies, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).Str("search", filter.Search).Msg("failed to list movies")
		return nil, err
	}
	metrics.QueryDuration.WithLabelValues(string(filter.Sort)).Observe(time.Since(start).Seconds())

	result := &ports.ListMoviesResult{
		Movies:     movies,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages(total, filter.Limit),
	}

	if s.cache != nil {
		s.cache.Set(ctx, filter, result)
	}
	return result, nil
}

// Create inserts a catalog entry without any title-uniqueness check; only
// the external-save path enforces one.
func (s *MovieService) Create(ctx context.Context, input ports.CreateMovieInput) (*domain.Movie, error) {
	movie := &domain.Movie{
		Title:       input.Title,
		Description: input.Description,
		Rating:      input.Rating,
		Year:        input.Year,
		Duration:    input.Duration,
		Poster:      input.Poster,
		Backdrop:    input.Backdrop,
		CreatedBy:   input.ActorID,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, movie)
	if err != nil {
		s.logger.Error().Err(err).Str("title", input.Title).Msg("failed to create movie")
		return nil, err
	}

	s.invalidate(ctx)
	metrics.MoviesCreatedTotal.WithLabelValues("manual").Inc()
	s.logger.Info().Str("title", created.Title).Str("created_by", input.ActorID).Msg("movie created")
	return created, nil
}

// SaveExternal adds an entry sourced from the third-party movie API.
// The existence check is a read-then-write: two concurrent saves of the
// same new title can both pass it and insert a duplicate.
func (s *MovieService) SaveExternal(ctx context.Context, input ports.CreateMovieInput) (*domain.Movie, error) {
	if _, err := s.repo.FindByTitle(ctx, input.Title); err == nil {
		return nil, domain.ErrMovieExists
	} else if !errors.Is(err, domain.ErrMovieNotFound) {
		return nil, err
	}

	movie := &domain.Movie{
		Title:       input.Title,
		Description: input.Description,
		Rating:      input.Rating,
		Year:        input.Year,
		Duration:    input.Duration,
		Poster:      input.Poster,
		Backdrop:    input.Backdrop,
		CreatedBy:   input.ActorID,
		CreatedAt:   time.Now().UTC(),
	}
	normalizeExternal(movie)

	created, err := s.repo.Create(ctx, movie)
	if err != nil {
		s.logger.Error().Err(err).Str("title", input.Title).Msg("failed to save movie")
		return nil, err
	}

	s.invalidate(ctx)
	metrics.MoviesCreatedTotal.WithLabelValues("external").Inc()
	s.logger.Info().Str("title", created.Title).Str("created_by", input.ActorID).Msg("movie saved from external source")
	return created, nil
}

func (s *MovieService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	metrics.MoviesDeletedTotal.Inc()
	s.logger.Info().Str("movie_id", id).Msg("movie deleted")
	return nil
}

func (s *MovieService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}

// normalizeExternal fills the fields the external API reports as missing
// or "N/A" so stored documents never carry nulls.
func normalizeExternal(m *domain.Movie) {
	if m.Description == "" {
		m.Description = "No description available"
	}
	if m.Duration == "" {
		m.Duration = "0"
	}
}

func totalPages(total int64, limit int) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
