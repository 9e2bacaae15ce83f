package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mayanksbank/banking_backend/internal/core/domain"
	portssvc "github.com/mayanksbank/banking_backend/internal/core/ports/services"
	"github.com/mayanksbank/banking_backend/internal/dto"
	"github.com/mayanksbank/banking_backend/internal/middleware"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	bankService portssvc.BankSvcFacade
}

func newAccountHandler(svc portssvc.BankSvcFacade) *accountHandler {
	return &accountHandler{bankService: svc}
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(rg *gin.RouterGroup, svc portssvc.BankSvcFacade) {
	h := newAccountHandler(svc)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("/:accountID", h.getAccount)
		accounts.GET("/:accountID/balance", h.checkBalance)
		accounts.POST("/:accountID/deposit", h.deposit)
		accounts.POST("/:accountID/withdraw", h.withdraw)
		accounts.POST("/:accountID/close", h.closeAccount)
		accounts.GET("/:accountID/transactions", h.listTransactions)
	}
}

func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	accountType, err := domain.ParseAccountType(req.AccountType)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, err := h.bankService.CreateAccount(c.Request.Context(), req.OwnerName, accountType, req.InitialBalance)
	if err != nil {
		respondWithServiceError(c, logger, err)
		return
	}

	logger.Info("Account created", slog.String("account_id", account.AccountID))
	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

func (h *accountHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	account, err := h.bankService.GetAccount(c.Request.Context(), accountID)
	if err != nil {
		respondWithServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

func (h *accountHandler) checkBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	balance, err := h.bankService.CheckBalance(c.Request.Context(), accountID)
	if err != nil {
		respondWithServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.BalanceResponse{AccountID: accountID, Balance: balance})
}

func (h *accountHandler) deposit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for deposit", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	newBalance, err := h.bankService.Deposit(c.Request.Context(), accountID, req.Amount)
	if err != nil {
		respondWithServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.BalanceResponse{AccountID: accountID, Balance: newBalance})
}

func (h *accountHandler) withdraw(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for withdraw", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	newBalance, err := h.bankService.Withdraw(c.Request.Context(), accountID, req.Amount)
	if err != nil {
		respondWithServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.BalanceResponse{AccountID: accountID, Balance: newBalance})
}

func (h *accountHandler) closeAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	if err := h.bankService.CloseAccount(c.Request.Context(), accountID); err != nil {
		respondWithServiceError(c, logger, err)
		return
	}

	logger.Info("Account closed", slog.String("account_id", accountID))
	c.JSON(http.StatusOK, gin.H{"accountID": accountID, "status": string(domain.StatusClosed)})
}

func (h *accountHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	transactions, err := h.bankService.ListTransactions(c.Request.Context(), accountID)
	if err != nil {
		respondWithServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponses(transactions))
}
