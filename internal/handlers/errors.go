package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/accountflow_ledger/internal/apperrors"
	"github.com/SscSPs/accountflow_ledger/internal/dto"
	"github.com/SscSPs/accountflow_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondWithError translates a service error into a status code and an ErrorResponse.
// action completes the generic 500 message, e.g. "create account".
func respondWithError(c *gin.Context, logger *slog.Logger, err error, action string) {
	var overpayment *apperrors.OverpaymentError
	var belowSettled *apperrors.BelowSettledTotalError

	switch {
	case errors.As(err, &overpayment):
		logger.Warn("Settlement rejected", slog.String("error", err.Error()), slog.String("remaining", overpayment.Remaining.StringFixed(2)))
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error(), Remaining: overpayment.Remaining.StringFixed(2)})
	case errors.As(err, &belowSettled):
		logger.Warn("Amount change rejected", slog.String("error", err.Error()), slog.String("settled", belowSettled.Settled.StringFixed(2)))
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error(), Settled: belowSettled.Settled.StringFixed(2)})
	case errors.Is(err, apperrors.ErrFinancialInvariant):
		logger.Warn("Financial invariant violated", slog.String("error", err.Error()))
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrConcurrentModification):
		logger.Warn("Concurrent modification", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error(), Retryable: true})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Conflict", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "Forbidden"})
	default:
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to " + action})
	}
}

// requireUserID reads the authenticated user, answering 401 when it is missing.
func requireUserID(c *gin.Context, logger *slog.Logger) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return "", false
	}
	return userID, true
}

// bindJSON decodes the body into req, answering 400 on malformed input.
func bindJSON(c *gin.Context, logger *slog.Logger, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		logger.Warn("Failed to bind JSON", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return false
	}
	return true
}

// bindListParams decodes limit/offset, answering 400 when they are out of range.
func bindListParams(c *gin.Context, logger *slog.Logger) (dto.ListParams, bool) {
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return params, false
	}
	return params, true
}
