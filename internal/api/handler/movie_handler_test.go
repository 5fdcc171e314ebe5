package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cinevault/catalog-api/internal/core/domain"
	"github.com/cinevault/catalog-api/internal/core/ports"
)

type stubMovieService struct {
	listFn   func(ctx context.Context, input ports.ListMoviesInput) (*ports.ListMoviesResult, error)
	createFn func(ctx context.Context, input ports.CreateMovieInput) (*domain.Movie, error)
	saveFn   func(ctx context.Context, input ports.CreateMovieInput) (*domain.Movie, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubMovieService) List(ctx context.Context, input ports.ListMoviesInput) (*ports.ListMoviesResult, error) {
	return s.listFn(ctx, input)
}

func (s *stubMovieService) Create(ctx context.Context, input ports.CreateMovieInput) (*domain.Movie, error) {
	return s.createFn(ctx, input)
}

func (s *stubMovieService) SaveExternal(ctx context.Context, input ports.CreateMovieInput) (*domain.Movie, error) {
	return s.saveFn(ctx, input)
}

func (s *stubMovieService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func TestMovieHandler_List_PassesQueryParams(t *testing.T) {
	e := newTestEcho()
	stub := &stubMovieService{
		listFn: func(ctx context.Context, input ports.ListMoviesInput) (*ports.ListMoviesResult, error) {
			if input.Search != "dune" || input.Sort != "rating" || input.Page != 2 || input.Limit != 5 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &ports.ListMoviesResult{
				Movies: []*domain.Movie{
					{ID: "m1", Title: "Dune", Rating: 8.1, CreatedAt: time.Now()},
				},
				Total:      6,
				Page:       2,
				Limit:      5,
				TotalPages: 2,
			}, nil
		},
	}
	handler := NewMovieHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/movies?search=dune&sort=rating&page=2&limit=5", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["totalPages"] != float64(2) || resp["currentPage"] != float64(2) {
		t.Fatalf("unexpected pagination: %+v", resp)
	}
	movies, ok := resp["movies"].([]any)
	if !ok || len(movies) != 1 {
		t.Fatalf("unexpected movies payload: %+v", resp["movies"])
	}
}

func TestMovieHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubMovieService{
		createFn: func(ctx context.Context, input ports.CreateMovieInput) (*domain.Movie, error) {
			if input.Title != "Dune" || input.ActorID != "admin_1" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Movie{ID: "m1", Title: input.Title, CreatedBy: input.ActorID, CreatedAt: time.Now()}, nil
		},
	}
	handler := NewMovieHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/movies", strings.NewReader(`{"title":"Dune","rating":8.1}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "admin_1")
	c.Set("role", "admin")

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestMovieHandler_Create_MissingTitle(t *testing.T) {
	e := newTestEcho()
	stub := &stubMovieService{
		createFn: func(ctx context.Context, input ports.CreateMovieInput) (*domain.Movie, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewMovieHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/movies", strings.NewReader(`{"rating":8.1}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "admin_1")

	if err := handler.Create(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestMovieHandler_Create_MissingIdentityClaim(t *testing.T) {
	e := newTestEcho()
	stub := &stubMovieService{
		createFn: func(ctx context.Context, input ports.CreateMovieInput) (*domain.Movie, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewMovieHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/movies", strings.NewReader(`{"title":"Dune"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Create(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestMovieHandler_Save_PropagatesConflict(t *testing.T) {
	e := newTestEcho()
	stub := &stubMovieService{
		saveFn: func(ctx context.Context, input ports.CreateMovieInput) (*domain.Movie, error) {
			return nil, domain.ErrMovieExists
		},
	}
	handler := NewMovieHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/movies/save", strings.NewReader(`{"title":"Dune"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "user_1")

	if err := handler.Save(c); err != domain.ErrMovieExists {
		t.Fatalf("expected ErrMovieExists to propagate, got %v", err)
	}
}

func TestMovieHandler_Delete_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubMovieService{
		deleteFn: func(ctx context.Context, id string) error {
			if id != "m1" {
				t.Fatalf("unexpected id: %s", id)
			}
			return nil
		},
	}
	handler := NewMovieHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/api/movies/m1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("m1")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestMovieHandler_Delete_PropagatesNotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubMovieService{
		deleteFn: func(ctx context.Context, id string) error {
			return domain.ErrMovieNotFound
		},
	}
	handler := NewMovieHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/api/movies/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := handler.Delete(c); err != domain.ErrMovieNotFound {
		t.Fatalf("expected ErrMovieNotFound to propagate, got %v", err)
	}
}
