package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cinevault/catalog-api/internal/core/ports"
)

// ImportDispatcher is the interface the handler uses to enqueue entries
// for background processing.
type ImportDispatcher interface {
	EnqueueBatch(inputs []ports.CreateMovieInput)
}

// ImportHandler handles async bulk imports of external catalog entries.
type ImportHandler struct {
	dispatcher ImportDispatcher
}

func NewImportHandler(dispatcher ImportDispatcher) *ImportHandler {
	return &ImportHandler{dispatcher: dispatcher}
}

// Receive handles POST /api/movies/import. It enqueues a batch of external
// entries and returns 202. Duplicates are skipped by the workers.
//
// @Summary      Bulk-import external movies
// @Tags         movies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      []createMovieRequest  true  "Array of movie entries"
// @Success      202   {object}  acceptedResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/movies/import [post]
func (h *ImportHandler) Receive(c echo.Context) error {
	var reqs []createMovieRequest
	if err := c.Bind(&reqs); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if len(reqs) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "batch cannot be empty")
	}

	actor, err := actorID(c)
	if err != nil {
		return err
	}

	inputs := make([]ports.CreateMovieInput, 0, len(reqs))
	for _, req := range reqs {
		if err := c.Validate(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		inputs = append(inputs, toCreateInput(req, actor))
	}

	h.dispatcher.EnqueueBatch(inputs)
	return c.JSON(http.StatusAccepted, acceptedResponse{
		Message: "import accepted",
		Count:   len(inputs),
	})
}
