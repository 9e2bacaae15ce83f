package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	portssvc "github.com/mayanksbank/banking_backend/internal/core/ports/services"
	"github.com/mayanksbank/banking_backend/internal/dto"
	"github.com/mayanksbank/banking_backend/internal/middleware"
)

// defaultAuditLimit caps how many audit entries the endpoint returns when no
// limit is given.
const defaultAuditLimit = 10

// bankHandler handles bank-wide HTTP requests: transfers, summary, audit.
type bankHandler struct {
	bankService portssvc.BankSvcFacade
}

func newBankHandler(svc portssvc.BankSvcFacade) *bankHandler {
	return &bankHandler{bankService: svc}
}

// registerBankRoutes registers the bank-wide routes.
func registerBankRoutes(rg *gin.RouterGroup, svc portssvc.BankSvcFacade) {
	h := newBankHandler(svc)

	rg.POST("/transfers", h.transfer)
	rg.GET("/summary", h.summary)
	rg.GET("/audit", h.recentAudit)
}

func (h *bankHandler) transfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for transfer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.bankService.Transfer(c.Request.Context(), req.FromAccountID, req.ToAccountID, req.Amount); err != nil {
		respondWithServiceError(c, logger, err)
		return
	}

	logger.Info("Transfer completed",
		slog.String("from_account_id", req.FromAccountID),
		slog.String("to_account_id", req.ToAccountID))
	c.JSON(http.StatusOK, gin.H{
		"fromAccountID": req.FromAccountID,
		"toAccountID":   req.ToAccountID,
		"amount":        req.Amount,
	})
}

func (h *bankHandler) summary(c *gin.Context) {
	summary := h.bankService.BankSummary(c.Request.Context())
	c.JSON(http.StatusOK, dto.SummaryResponse{
		BankName:       h.bankService.Name(),
		TotalAccounts:  summary.TotalAccounts,
		ActiveAccounts: summary.ActiveAccounts,
		TotalBalance:   summary.TotalBalance,
		AverageBalance: summary.AverageBalance,
	})
}

func (h *bankHandler) recentAudit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit := defaultAuditLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	entries, err := h.bankService.RecentAuditEntries(c.Request.Context(), limit)
	if err != nil {
		respondWithServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAuditEntryResponses(entries))
}
