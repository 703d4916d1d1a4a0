package handler

import (
	"context"
	"errors"
	"net/http"

	"game-forge/internal/rules"
	"game-forge/shared/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func handleServiceError(c *gin.Context, err error) {
	var statusCode int
	var errResp models.ErrorResponse

	switch {
	case errors.Is(err, rules.ErrOutOfBounds),
		errors.Is(err, rules.ErrCellOccupied),
		errors.Is(err, rules.ErrNotYourTurn),
		errors.Is(err, rules.ErrInvalidBoard):
		statusCode = http.StatusBadRequest
		errResp = models.ErrorResponse{Code: models.ErrCodeInvalidMove, Message: err.Error()}
	case errors.Is(err, rules.ErrGameOver):
		statusCode = http.StatusConflict
		errResp = models.ErrorResponse{Code: models.ErrCodeGameOver, Message: "Game is already over"}
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		statusCode = http.StatusRequestTimeout
		errResp = models.ErrorResponse{Code: models.ErrCodeCancelled, Message: "Request was cancelled"}
	default:
		zap.L().Error("Unhandled internal error in handleServiceError", zap.Error(err))
		statusCode = http.StatusInternalServerError
		errResp = models.ErrorResponse{Code: models.ErrCodeInternal, Message: "An unexpected internal error occurred"}
	}

	c.AbortWithStatusJSON(statusCode, errResp)
}

func abortBadRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse{
		Code:    models.ErrCodeValidation,
		Message: "Invalid request body: " + err.Error(),
	})
}
