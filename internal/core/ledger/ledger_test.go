package ledger_test

import (
	"context"
	"testing"

	"github.com/mayanksbank/banking_backend/internal/core/domain"
	"github.com/mayanksbank/banking_backend/internal/core/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockTransactionRepository is a mock type for the TransactionRepository interface.
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindTransactionsByAccountID(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func TestRecordAssignsIDAndTimestamp(t *testing.T) {
	repo := new(MockTransactionRepository)
	repo.On("SaveTransaction", mock.Anything, mock.Anything).Return(nil)

	l := ledger.New(repo)

	txn := l.Record(context.Background(), "ACC-12345678", domain.TxDeposit, decimal.NewFromInt(20), domain.TxSuccess, "New balance=20")

	assert.NotEmpty(t, txn.TransactionID)
	assert.False(t, txn.Timestamp.IsZero())
	assert.Equal(t, domain.TxDeposit, txn.Type)
	assert.Equal(t, domain.TxSuccess, txn.Status)
	repo.AssertExpectations(t)
}

func TestRecordNeverFailsOnStoreError(t *testing.T) {
	repo := new(MockTransactionRepository)
	repo.On("SaveTransaction", mock.Anything, mock.Anything).Return(assert.AnError)

	l := ledger.New(repo)

	txn := l.Record(context.Background(), "ACC-12345678", domain.TxWithdraw, decimal.NewFromInt(5), domain.TxFailed, "insufficient funds")

	assert.NotEmpty(t, txn.TransactionID)
	require.Len(t, l.Entries(), 1, "failed records are still appended")
}

func TestEntriesReturnsAppendOrderSnapshot(t *testing.T) {
	repo := new(MockTransactionRepository)
	repo.On("SaveTransaction", mock.Anything, mock.Anything).Return(nil)

	l := ledger.New(repo)
	l.Record(context.Background(), "ACC-1", domain.TxDeposit, decimal.NewFromInt(1), domain.TxSuccess, "")
	l.Record(context.Background(), "ACC-1", domain.TxWithdraw, decimal.NewFromInt(1), domain.TxSuccess, "")

	entries := l.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, domain.TxDeposit, entries[0].Type)
	assert.Equal(t, domain.TxWithdraw, entries[1].Type)
}
