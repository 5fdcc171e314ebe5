package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

// createMovieRequest is the lenient catalog schema: only the title is
// mandatory, everything else is display metadata.
type createMovieRequest struct {
	Title       string  `json:"title"       validate:"required"`
	Description string  `json:"description"`
	Rating      float64 `json:"rating"      validate:"gte=0,lte=10"`
	Year        string  `json:"year"`
	Duration    string  `json:"duration"`
	Poster      string  `json:"poster"      validate:"omitempty,url"`
	Backdrop    string  `json:"backdrop"    validate:"omitempty,url"`
}

// --- Response types ---
// These are intentionally separate from domain types so the JSON contract
// the browser client consumes is not coupled to internal changes. Field
// names mirror the contract the client already renders (camelCase).

type movieResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Rating      float64 `json:"rating"`
	Year        string  `json:"year,omitempty"`
	Duration    string  `json:"duration,omitempty"`
	Poster      string  `json:"poster,omitempty"`
	Backdrop    string  `json:"backdrop,omitempty"`
	CreatedBy   string  `json:"createdBy,omitempty"`
	CreatedAt   string  `json:"createdAt"`
}

type listMoviesResponse struct {
	Movies      []movieResponse `json:"movies"`
	TotalPages  int             `json:"totalPages"`
	CurrentPage int             `json:"currentPage"`
}

type deleteMovieResponse struct {
	Message string `json:"message"`
}

type acceptedResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count,omitempty"`
}
