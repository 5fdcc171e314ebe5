package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// actorID extracts the authenticated user's id injected by the Auth
// middleware. Mutations attribute createdBy to it, so a token without an
// id claim is rejected with 401 even when the signature is valid.
func actorID(c echo.Context) (string, error) {
	id, _ := c.Get("user_id").(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "token missing user identity")
	}
	return id, nil
}
