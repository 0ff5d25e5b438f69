package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/docchat/docchat-be/types"
)

// writeError maps domain errors to HTTP statuses at the API boundary. Every
// failure yields a JSON body with a human-readable detail message.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	var extractionErr *types.ExtractionError
	switch {
	case errors.As(err, &extractionErr):
		status = http.StatusBadRequest
	case errors.Is(err, types.ErrSessionNotFound):
		status = http.StatusNotFound
	case errors.Is(err, types.ErrIndexNotReady):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		log.Error().Err(err).Msg("request failed")
	}
	c.JSON(status, types.ErrorResponse{Detail: err.Error()})
}

func writeBadRequest(c *gin.Context, detail string) {
	c.JSON(http.StatusBadRequest, types.ErrorResponse{Detail: detail})
}
