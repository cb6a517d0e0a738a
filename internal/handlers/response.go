package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/devconnector-backend/internal/apierr"
	"github.com/yungbote/devconnector-backend/internal/logger"
)

// RespondServiceError translates service errors to the wire shapes clients
// already depend on: validation failures as {errors:[...]}, domain errors as
// {msg} with their per-route status, anything else as a logged 500.
func RespondServiceError(c *gin.Context, log *logger.Logger, err error) {
	var ve *apierr.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{"errors": ve.Errors})
		return
	}
	var ae *apierr.Error
	if errors.As(err, &ae) {
		c.JSON(ae.Status, gin.H{"msg": ae.Msg})
		return
	}
	if log != nil {
		log.Error("Unhandled service error", "error", err)
	}
	c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}
