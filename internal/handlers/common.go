package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/eldon922/ekklesia-be/internal/importer"
	"github.com/eldon922/ekklesia-be/internal/services"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Message string `json:"message" example:"operation successful"`
}

func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + param})
		return 0, false
	}
	return uint(id), true
}

// respondError maps service errors onto the HTTP taxonomy: not-found,
// forbidden (finished event), unprocessable import input, validation,
// and everything else as an internal error.
func respondError(c *gin.Context, err error) {
	var nameErr *importer.ErrNameColumn
	switch {
	case errors.Is(err, services.ErrEventNotFound),
		errors.Is(err, services.ErrAttendeeNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrEventFinished):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrInvalidSecret):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case errors.Is(err, importer.ErrNoRows), errors.As(err, &nameErr):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrNameRequired):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		slog.Error("internal error", "err", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}
