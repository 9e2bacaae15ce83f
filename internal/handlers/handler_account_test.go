package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mayanksbank/banking_backend/internal/apperrors"
	"github.com/mayanksbank/banking_backend/internal/core/domain"
	"github.com/mayanksbank/banking_backend/internal/handlers"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockBankService mocks the service facade for handler tests.
type MockBankService struct {
	mock.Mock
}

func (m *MockBankService) CreateAccount(ctx context.Context, owner string, accountType domain.AccountType, initialBalance decimal.Decimal) (*domain.Account, error) {
	args := m.Called(ctx, owner, accountType, initialBalance)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockBankService) GetAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockBankService) Deposit(ctx context.Context, accountID string, amount decimal.Decimal) (decimal.Decimal, error) {
	args := m.Called(ctx, accountID, amount)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockBankService) Withdraw(ctx context.Context, accountID string, amount decimal.Decimal) (decimal.Decimal, error) {
	args := m.Called(ctx, accountID, amount)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockBankService) CheckBalance(ctx context.Context, accountID string) (decimal.Decimal, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockBankService) Transfer(ctx context.Context, fromAccountID, toAccountID string, amount decimal.Decimal) error {
	args := m.Called(ctx, fromAccountID, toAccountID, amount)
	return args.Error(0)
}

func (m *MockBankService) CloseAccount(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

func (m *MockBankService) BankSummary(ctx context.Context) domain.BankSummary {
	args := m.Called(ctx)
	return args.Get(0).(domain.BankSummary)
}

func (m *MockBankService) ListTransactions(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockBankService) RecentAuditEntries(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditEntry), args.Error(1)
}

func (m *MockBankService) Name() string {
	args := m.Called()
	return args.String(0)
}

type HandlerTestSuite struct {
	suite.Suite
	service *MockBankService
	router  *gin.Engine
}

func (s *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.service = new(MockBankService)
	s.router = gin.New()
	handlers.RegisterRoutes(s.router.Group("/api/v1"), s.service)
}

func (s *HandlerTestSuite) performRequest(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	s.router.ServeHTTP(recorder, req)
	return recorder
}

func (s *HandlerTestSuite) TestCreateAccount_Created() {
	account := &domain.Account{
		AccountID:   "ACC-1A2B3C4D",
		OwnerName:   "Alice",
		AccountType: domain.Savings,
		Balance:     decimal.NewFromInt(100),
		Status:      domain.StatusActive,
	}
	s.service.On("CreateAccount", mock.Anything, "Alice", domain.Savings, mock.Anything).Return(account, nil).Once()

	recorder := s.performRequest(http.MethodPost, "/api/v1/accounts", gin.H{
		"ownerName":      "Alice",
		"accountType":    "SAVINGS",
		"initialBalance": 100,
	})

	s.Equal(http.StatusCreated, recorder.Code)
	var resp map[string]any
	s.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &resp))
	s.Equal("ACC-1A2B3C4D", resp["accountID"])
	s.Equal("ACTIVE", resp["status"])
	s.service.AssertExpectations(s.T())
}

func (s *HandlerTestSuite) TestCreateAccount_UnknownTypeRejected() {
	recorder := s.performRequest(http.MethodPost, "/api/v1/accounts", gin.H{
		"ownerName":   "Alice",
		"accountType": "CHECKING",
	})

	s.Equal(http.StatusBadRequest, recorder.Code)
	s.service.AssertNotCalled(s.T(), "CreateAccount", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *HandlerTestSuite) TestCreateAccount_MissingOwnerRejected() {
	recorder := s.performRequest(http.MethodPost, "/api/v1/accounts", gin.H{
		"accountType": "SAVINGS",
	})
	s.Equal(http.StatusBadRequest, recorder.Code)
}

func (s *HandlerTestSuite) TestGetAccount_NotFound() {
	s.service.On("GetAccount", mock.Anything, "ACC-MISSING1").
		Return(nil, fmt.Errorf("%w: ACC-MISSING1", apperrors.ErrAccountNotFound)).Once()

	recorder := s.performRequest(http.MethodGet, "/api/v1/accounts/ACC-MISSING1", nil)
	s.Equal(http.StatusNotFound, recorder.Code)
}

func (s *HandlerTestSuite) TestDeposit_ReturnsNewBalance() {
	s.service.On("Deposit", mock.Anything, "ACC-1A2B3C4D", mock.Anything).
		Return(decimal.NewFromInt(150), nil).Once()

	recorder := s.performRequest(http.MethodPost, "/api/v1/accounts/ACC-1A2B3C4D/deposit", gin.H{"amount": 50})

	s.Equal(http.StatusOK, recorder.Code)
	var resp map[string]any
	s.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &resp))
	s.Equal("ACC-1A2B3C4D", resp["accountID"])
}

func (s *HandlerTestSuite) TestWithdraw_InsufficientFundsConflict() {
	s.service.On("Withdraw", mock.Anything, "ACC-1A2B3C4D", mock.Anything).
		Return(decimal.Zero, fmt.Errorf("%w: ACC-1A2B3C4D", apperrors.ErrInsufficientFunds)).Once()

	recorder := s.performRequest(http.MethodPost, "/api/v1/accounts/ACC-1A2B3C4D/withdraw", gin.H{"amount": 500})
	s.Equal(http.StatusConflict, recorder.Code)
}

func (s *HandlerTestSuite) TestDeposit_MalformedBodyRejected() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/accounts/ACC-1A2B3C4D/deposit", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	s.router.ServeHTTP(recorder, req)

	s.Equal(http.StatusBadRequest, recorder.Code)
	s.service.AssertNotCalled(s.T(), "Deposit", mock.Anything, mock.Anything, mock.Anything)
}

func (s *HandlerTestSuite) TestCloseAccount_AlreadyClosedConflict() {
	s.service.On("CloseAccount", mock.Anything, "ACC-1A2B3C4D").
		Return(fmt.Errorf("%w: ACC-1A2B3C4D", apperrors.ErrAlreadyClosed)).Once()

	recorder := s.performRequest(http.MethodPost, "/api/v1/accounts/ACC-1A2B3C4D/close", nil)
	s.Equal(http.StatusConflict, recorder.Code)
}

func (s *HandlerTestSuite) TestTransfer_OK() {
	s.service.On("Transfer", mock.Anything, "ACC-AAAA1111", "ACC-BBBB2222", mock.Anything).Return(nil).Once()

	recorder := s.performRequest(http.MethodPost, "/api/v1/transfers", gin.H{
		"fromAccountID": "ACC-AAAA1111",
		"toAccountID":   "ACC-BBBB2222",
		"amount":        25,
	})
	s.Equal(http.StatusOK, recorder.Code)
	s.service.AssertExpectations(s.T())
}

func (s *HandlerTestSuite) TestTransfer_SelfTransferRejected() {
	s.service.On("Transfer", mock.Anything, "ACC-AAAA1111", "ACC-AAAA1111", mock.Anything).
		Return(fmt.Errorf("%w: ACC-AAAA1111", apperrors.ErrSelfTransfer)).Once()

	recorder := s.performRequest(http.MethodPost, "/api/v1/transfers", gin.H{
		"fromAccountID": "ACC-AAAA1111",
		"toAccountID":   "ACC-AAAA1111",
		"amount":        25,
	})
	s.Equal(http.StatusBadRequest, recorder.Code)
}

func (s *HandlerTestSuite) TestTransfer_PartialFailureReportsStrandedAmount() {
	partial := &apperrors.PartialTransferError{
		FromAccountID: "ACC-AAAA1111",
		ToAccountID:   "ACC-BBBB2222",
		Amount:        decimal.NewFromInt(25),
		Cause:         assert.AnError,
	}
	s.service.On("Transfer", mock.Anything, "ACC-AAAA1111", "ACC-BBBB2222", mock.Anything).Return(partial).Once()

	recorder := s.performRequest(http.MethodPost, "/api/v1/transfers", gin.H{
		"fromAccountID": "ACC-AAAA1111",
		"toAccountID":   "ACC-BBBB2222",
		"amount":        25,
	})

	s.Equal(http.StatusInternalServerError, recorder.Code)
	var resp map[string]any
	s.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &resp))
	s.Contains(resp, "strandedAmount")
}

func (s *HandlerTestSuite) TestSummary() {
	s.service.On("BankSummary", mock.Anything).Return(domain.BankSummary{
		TotalAccounts:  3,
		ActiveAccounts: 2,
		TotalBalance:   decimal.NewFromInt(300),
		AverageBalance: decimal.NewFromInt(100),
	}).Once()
	s.service.On("Name").Return("Test Bank").Once()

	recorder := s.performRequest(http.MethodGet, "/api/v1/summary", nil)

	s.Equal(http.StatusOK, recorder.Code)
	var resp map[string]any
	s.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &resp))
	s.Equal("Test Bank", resp["bankName"])
	s.Equal(float64(3), resp["totalAccounts"])
}

func (s *HandlerTestSuite) TestRecentAudit_DefaultLimit() {
	s.service.On("RecentAuditEntries", mock.Anything, 10).
		Return([]domain.AuditEntry{{Action: "DEPOSIT", Status: domain.AuditSuccess}}, nil).Once()

	recorder := s.performRequest(http.MethodGet, "/api/v1/audit", nil)
	s.Equal(http.StatusOK, recorder.Code)
	s.service.AssertExpectations(s.T())
}

func (s *HandlerTestSuite) TestRecentAudit_BadLimitRejected() {
	recorder := s.performRequest(http.MethodGet, "/api/v1/audit?limit=zero", nil)
	s.Equal(http.StatusBadRequest, recorder.Code)
	s.service.AssertNotCalled(s.T(), "RecentAuditEntries", mock.Anything, mock.Anything)
}

func (s *HandlerTestSuite) TestListTransactions() {
	s.service.On("ListTransactions", mock.Anything, "ACC-1A2B3C4D").
		Return([]domain.Transaction{{TransactionID: "TX-0011223344", AccountID: "ACC-1A2B3C4D", Type: domain.TxDeposit, Status: domain.TxSuccess}}, nil).Once()

	recorder := s.performRequest(http.MethodGet, "/api/v1/accounts/ACC-1A2B3C4D/transactions", nil)

	s.Equal(http.StatusOK, recorder.Code)
	var resp []map[string]any
	s.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &resp))
	s.Require().Len(resp, 1)
	s.Equal("TX-0011223344", resp[0]["transactionID"])
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
