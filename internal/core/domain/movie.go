package domain

import (
	"errors"
	"time"
)

// MovieSort selects the ordering of catalog listings.
type MovieSort string

const (
	SortRating    MovieSort = "rating" // descending numeric rating
	SortYear      MovieSort = "year"   // descending release year
	SortTitle     MovieSort = "title"  // ascending lexicographic
	SortCreatedAt MovieSort = "createdAt"
)

var ErrMovieNotFound = errors.New("movie not found")
var ErrMovieExists = errors.New("movie already exists")

// Movie is a single catalog entry. Only Title is required; the schema is
// deliberately lenient so entries saved from external sources and entries
// typed in by an admin share one shape.
type Movie struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Rating      float64   `json:"rating"`
	Year        string    `json:"year,omitempty"`
	Duration    string    `json:"duration,omitempty"`
	Poster      string    `json:"poster,omitempty"`
	Backdrop    string    `json:"backdrop,omitempty"`
	CreatedBy   string    `json:"created_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
