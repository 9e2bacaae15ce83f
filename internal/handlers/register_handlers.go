// Package handlers is the thin HTTP shell over the bank service. Handlers
// bind requests, delegate to the service facade, and map error kinds to
// status codes; they never touch account state directly.
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mayanksbank/banking_backend/internal/apperrors"
	portssvc "github.com/mayanksbank/banking_backend/internal/core/ports/services"
)

// RegisterRoutes mounts every API route on the given group.
func RegisterRoutes(rg *gin.RouterGroup, svc portssvc.BankSvcFacade) {
	registerAccountRoutes(rg, svc)
	registerBankRoutes(rg, svc)
}

// respondWithServiceError maps a service error to its HTTP representation.
func respondWithServiceError(c *gin.Context, logger *slog.Logger, err error) {
	var partial *apperrors.PartialTransferError
	switch {
	case errors.As(err, &partial):
		logger.Error("Partial transfer failure",
			slog.String("from_account_id", partial.FromAccountID),
			slog.String("to_account_id", partial.ToAccountID),
			slog.String("stranded_amount", partial.Amount.String()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":          partial.Error(),
			"strandedAmount": partial.Amount,
		})
	case errors.Is(err, apperrors.ErrAccountNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInvalidAmount),
		errors.Is(err, apperrors.ErrInvalidOwnerName),
		errors.Is(err, apperrors.ErrInvalidAccountType),
		errors.Is(err, apperrors.ErrSelfTransfer):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInsufficientFunds),
		errors.Is(err, apperrors.ErrAccountInactive),
		errors.Is(err, apperrors.ErrAlreadyClosed),
		errors.Is(err, apperrors.ErrDuplicateID):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error("Unhandled service error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
