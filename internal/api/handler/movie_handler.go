package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/cinevault/catalog-api/internal/core/ports"
)

// MovieHandler handles HTTP requests for catalog operations.
type MovieHandler struct {
	service ports.MovieService
}

func NewMovieHandler(service ports.MovieService) *MovieHandler {
	return &MovieHandler{service: service}
}

// List handles GET /api/movies with search, sort and pagination.
//
// @Summary      List catalog entries
// @Tags         movies
// @Produce      json
// @Param        search  query     string  false  "Case-insensitive substring on title or description"
// @Param        sort    query     string  false  "Sort key: rating, year, title, createdAt"
// @Param        page    query     int     false  "1-based page number"
// @Param        limit   query     int     false  "Page size (default 10, max 100)"
// @Success      200     {object}  listMoviesResponse
// @Failure      500     {object}  errorResponse
// @Router       /api/movies [get]
func (h *MovieHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.List(c.Request().Context(), ports.ListMoviesInput{
		Search: c.QueryParam("search"),
		Sort:   c.QueryParam("sort"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListResponse(result))
}

// Create handles POST /api/movies. Admin only.
//
// @Summary      Add a catalog entry
// @Tags         movies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createMovieRequest  true  "Movie details"
// @Success      201   {object}  movieResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/movies [post]
func (h *MovieHandler) Create(c echo.Context) error {
	var req createMovieRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	actor, err := actorID(c)
	if err != nil {
		return err
	}

	movie, err := h.service.Create(c.Request().Context(), toCreateInput(req, actor))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toMovieResponse(movie))
}

// Save handles POST /api/movies/save: stores an entry found in the external
// movie API into the local collection. Any authenticated user may save.
//
// @Summary      Save an external movie to the collection
// @Tags         movies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createMovieRequest  true  "Movie details from the external API"
// @Success      201   {object}  movieResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/movies/save [post]
func (h *MovieHandler) Save(c echo.Context) error {
	var req createMovieRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	actor, err := actorID(c)
	if err != nil {
		return err
	}

	movie, err := h.service.SaveExternal(c.Request().Context(), toCreateInput(req, actor))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toMovieResponse(movie))
}

// Delete handles DELETE /api/movies/:id. Admin only; any admin may delete
// any entry, there is no ownership check.
//
// @Summary      Delete a catalog entry
// @Tags         movies
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Movie id"
// @Success      200 {object}  deleteMovieResponse
// @Failure      401 {object}  errorResponse
// @Failure      403 {object}  errorResponse
// @Failure      404 {object}  errorResponse
// @Router       /api/movies/{id} [delete]
func (h *MovieHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deleteMovieResponse{Message: "movie removed"})
}
