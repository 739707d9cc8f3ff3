package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorBody is the flat error payload the frontend consumes.
type ErrorBody struct {
	Error string `json:"error"`
}

// OKResponse writes the payload as-is with HTTP 200. The analytics
// endpoints return flat JSON shapes, not an envelope.
func OKResponse(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

// BadRequestResponse writes a 400 with an {error} body.
func BadRequestResponse(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, ErrorBody{Error: message})
}

// InternalErrorResponse writes a 500 with an {error} body carrying the
// failure message verbatim.
func InternalErrorResponse(c echo.Context, err error) error {
	return c.JSON(http.StatusInternalServerError, ErrorBody{Error: err.Error()})
}
