// Package web holds the shared HTTP response conventions.
package web

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/entities"
)

// JSONError maps the failure taxonomy onto HTTP statuses.
func JSONError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, entities.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, entities.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, entities.ErrMissingInspection):
		status = http.StatusConflict
	}
	var verr validator.ValidationErrors
	if errors.As(err, &verr) {
		status = http.StatusBadRequest
	}
	return c.JSON(status, map[string]string{"error": err.Error()})
}
