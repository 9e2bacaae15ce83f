package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mayanksbank/banking_backend/internal/apperrors"
	"github.com/mayanksbank/banking_backend/internal/core/audit"
	"github.com/mayanksbank/banking_backend/internal/core/domain"
	"github.com/mayanksbank/banking_backend/internal/core/ledger"
	portsrepo "github.com/mayanksbank/banking_backend/internal/core/ports/repositories"
	portssvc "github.com/mayanksbank/banking_backend/internal/core/ports/services"
	"github.com/mayanksbank/banking_backend/internal/core/registry"
	"github.com/mayanksbank/banking_backend/internal/middleware"
	"github.com/shopspring/decimal"
)

// Audit action names, one per public operation.
const (
	actionCreateAccount    = "CREATE_ACCOUNT"
	actionGetAccount       = "GET_ACCOUNT"
	actionDeposit          = "DEPOSIT"
	actionWithdraw         = "WITHDRAW"
	actionBalanceCheck     = "BALANCE_CHECK"
	actionTransfer         = "TRANSFER"
	actionCloseAccount     = "CLOSE_ACCOUNT"
	actionBankSummary      = "BANK_SUMMARY"
	actionLoadAccounts     = "LOAD_ACCOUNTS"
	actionListTransactions = "LIST_TRANSACTIONS"
)

// BankService orchestrates the account registry, transaction ledger, audit
// trail, and persistence gateway behind every public banking operation.
// Every call leaves exactly one audit entry, success or failure.
type BankService struct {
	name        string
	registry    *registry.Registry
	ledger      *ledger.TransactionLedger
	audit       *audit.Trail
	accountRepo portsrepo.AccountRepository
}

// NewBankService wires the service from its collaborators. Call
// LoadAccountsFromStore once before serving traffic.
func NewBankService(name string, reg *registry.Registry, txLedger *ledger.TransactionLedger, trail *audit.Trail, accountRepo portsrepo.AccountRepository) *BankService {
	return &BankService{
		name:        name,
		registry:    reg,
		ledger:      txLedger,
		audit:       trail,
		accountRepo: accountRepo,
	}
}

var _ portssvc.BankSvcFacade = (*BankService)(nil)

// Name returns the bank's display name.
func (s *BankService) Name() string {
	return s.name
}

// CreateAccount registers a new ACTIVE account and persists it. A nonzero
// initial balance additionally leaves an initial-deposit transaction record;
// the balance itself is already set by the registry.
func (s *BankService) CreateAccount(ctx context.Context, owner string, accountType domain.AccountType, initialBalance decimal.Decimal) (*domain.Account, error) {
	owner = strings.TrimSpace(owner)
	if owner == "" {
		s.audit.Log(ctx, actionCreateAccount, "", initialBalance, domain.AuditFailed, "Blank owner name")
		return nil, apperrors.ErrInvalidOwnerName
	}

	account, err := s.registry.Create(owner, accountType, initialBalance)
	if err != nil {
		s.audit.Log(ctx, actionCreateAccount, "", initialBalance, domain.AuditFailed, err.Error())
		return nil, err
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		// Back the account out of the registry so memory never claims an
		// account the store does not know about.
		s.registry.Discard(account.AccountID)
		wrapped := fmt.Errorf("%w: save account %s: %v", apperrors.ErrPersistence, account.AccountID, err)
		s.audit.Log(ctx, actionCreateAccount, account.AccountID, initialBalance, domain.AuditFailed, wrapped.Error())
		return nil, wrapped
	}

	s.audit.Log(ctx, actionCreateAccount, account.AccountID, initialBalance, domain.AuditSuccess, "Owner="+owner)
	if initialBalance.Sign() > 0 {
		s.ledger.Record(ctx, account.AccountID, domain.TxDeposit, initialBalance, domain.TxSuccess, "Initial deposit")
	}

	middleware.GetLoggerFromCtx(ctx).Info("Account created",
		slog.String("account_id", account.AccountID),
		slog.String("account_type", string(account.AccountType)))
	return &account, nil
}

// GetAccount returns a snapshot of one account.
func (s *BankService) GetAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.registry.Get(accountID)
	if err != nil {
		s.audit.Log(ctx, actionGetAccount, accountID, decimal.Zero, domain.AuditFailed, "Account not found")
		return nil, err
	}
	s.audit.Log(ctx, actionGetAccount, accountID, decimal.Zero, domain.AuditSuccess, "Owner="+account.OwnerName)
	return &account, nil
}

// Deposit credits an active account and returns the new balance.
func (s *BankService) Deposit(ctx context.Context, accountID string, amount decimal.Decimal) (decimal.Decimal, error) {
	account, err := s.registry.Get(accountID)
	if err != nil {
		s.audit.Log(ctx, actionDeposit, accountID, amount, domain.AuditFailed, "Account not found")
		return decimal.Zero, err
	}
	if !account.IsActive() {
		s.audit.Log(ctx, actionDeposit, accountID, amount, domain.AuditFailed, "Account not active")
		return decimal.Zero, fmt.Errorf("%w: %s", apperrors.ErrAccountInactive, accountID)
	}

	newBalance, err := s.registry.ApplyDeposit(accountID, amount)
	if err != nil {
		s.ledger.Record(ctx, accountID, domain.TxDeposit, amount, domain.TxFailed, err.Error())
		s.audit.Log(ctx, actionDeposit, accountID, amount, domain.AuditFailed, err.Error())
		return decimal.Zero, err
	}

	if err := s.accountRepo.UpdateAccountBalance(ctx, accountID, newBalance); err != nil {
		s.rollbackDeposit(ctx, accountID, amount)
		wrapped := fmt.Errorf("%w: update balance for %s: %v", apperrors.ErrPersistence, accountID, err)
		s.ledger.Record(ctx, accountID, domain.TxDeposit, amount, domain.TxFailed, wrapped.Error())
		s.audit.Log(ctx, actionDeposit, accountID, amount, domain.AuditFailed, wrapped.Error())
		return decimal.Zero, wrapped
	}

	message := "New balance=" + newBalance.String()
	s.ledger.Record(ctx, accountID, domain.TxDeposit, amount, domain.TxSuccess, message)
	s.audit.Log(ctx, actionDeposit, accountID, amount, domain.AuditSuccess, message)
	return newBalance, nil
}

// Withdraw debits an active account and returns the new balance.
func (s *BankService) Withdraw(ctx context.Context, accountID string, amount decimal.Decimal) (decimal.Decimal, error) {
	account, err := s.registry.Get(accountID)
	if err != nil {
		s.audit.Log(ctx, actionWithdraw, accountID, amount, domain.AuditFailed, "Account not found")
		return decimal.Zero, err
	}
	if !account.IsActive() {
		s.audit.Log(ctx, actionWithdraw, accountID, amount, domain.AuditFailed, "Account not active")
		return decimal.Zero, fmt.Errorf("%w: %s", apperrors.ErrAccountInactive, accountID)
	}

	newBalance, err := s.registry.ApplyWithdraw(accountID, amount)
	if err != nil {
		s.ledger.Record(ctx, accountID, domain.TxWithdraw, amount, domain.TxFailed, err.Error())
		s.audit.Log(ctx, actionWithdraw, accountID, amount, domain.AuditFailed, err.Error())
		return decimal.Zero, err
	}

	if err := s.accountRepo.UpdateAccountBalance(ctx, accountID, newBalance); err != nil {
		s.rollbackWithdraw(ctx, accountID, amount)
		wrapped := fmt.Errorf("%w: update balance for %s: %v", apperrors.ErrPersistence, accountID, err)
		s.ledger.Record(ctx, accountID, domain.TxWithdraw, amount, domain.TxFailed, wrapped.Error())
		s.audit.Log(ctx, actionWithdraw, accountID, amount, domain.AuditFailed, wrapped.Error())
		return decimal.Zero, wrapped
	}

	message := "New balance=" + newBalance.String()
	s.ledger.Record(ctx, accountID, domain.TxWithdraw, amount, domain.TxSuccess, message)
	s.audit.Log(ctx, actionWithdraw, accountID, amount, domain.AuditSuccess, message)
	return newBalance, nil
}

// CheckBalance returns the current balance of an account.
func (s *BankService) CheckBalance(ctx context.Context, accountID string) (decimal.Decimal, error) {
	account, err := s.registry.Get(accountID)
	if err != nil {
		s.audit.Log(ctx, actionGetAccount, accountID, decimal.Zero, domain.AuditFailed, "Account not found")
		return decimal.Zero, err
	}
	s.audit.Log(ctx, actionBalanceCheck, accountID, decimal.Zero, domain.AuditSuccess, "Balance="+account.Balance.String())
	return account.Balance, nil
}

// Transfer moves amount from one account to another. The source debit and
// destination credit are independent single-account mutations; if the
// destination leg fails after the source was debited, the source is
// re-credited. Only when that compensation cannot be applied does the error
// surface as a PartialTransferError.
func (s *BankService) Transfer(ctx context.Context, fromAccountID, toAccountID string, amount decimal.Decimal) error {
	if fromAccountID == toAccountID {
		s.audit.Log(ctx, actionTransfer, fromAccountID, amount, domain.AuditFailed, "Source and destination are the same account")
		return fmt.Errorf("%w: %s", apperrors.ErrSelfTransfer, fromAccountID)
	}

	fromAccount, err := s.registry.Get(fromAccountID)
	if err != nil {
		s.audit.Log(ctx, actionTransfer, fromAccountID, amount, domain.AuditFailed, "Source account not found")
		return err
	}
	toAccount, err := s.registry.Get(toAccountID)
	if err != nil {
		s.audit.Log(ctx, actionTransfer, toAccountID, amount, domain.AuditFailed, "Destination account not found")
		return err
	}
	if !fromAccount.IsActive() {
		s.audit.Log(ctx, actionTransfer, fromAccountID, amount, domain.AuditFailed, "Source account not active")
		return fmt.Errorf("%w: %s", apperrors.ErrAccountInactive, fromAccountID)
	}
	if !toAccount.IsActive() {
		s.audit.Log(ctx, actionTransfer, toAccountID, amount, domain.AuditFailed, "Destination account not active")
		return fmt.Errorf("%w: %s", apperrors.ErrAccountInactive, toAccountID)
	}

	// Source leg. No destination mutation has happened yet, so any failure
	// here leaves the bank consistent.
	newFromBalance, err := s.registry.ApplyWithdraw(fromAccountID, amount)
	if err != nil {
		s.audit.Log(ctx, actionTransfer, fromAccountID, amount, domain.AuditFailed, err.Error())
		return err
	}
	if err := s.accountRepo.UpdateAccountBalance(ctx, fromAccountID, newFromBalance); err != nil {
		s.rollbackWithdraw(ctx, fromAccountID, amount)
		wrapped := fmt.Errorf("%w: update balance for %s: %v", apperrors.ErrPersistence, fromAccountID, err)
		s.audit.Log(ctx, actionTransfer, fromAccountID, amount, domain.AuditFailed, wrapped.Error())
		return wrapped
	}
	s.ledger.Record(ctx, fromAccountID, domain.TxTransferOut, amount, domain.TxSuccess,
		fmt.Sprintf("To %s, new balance=%s", toAccountID, newFromBalance))

	// Destination leg.
	newToBalance, err := s.registry.ApplyDeposit(toAccountID, amount)
	if err != nil {
		return s.compensateTransfer(ctx, fromAccountID, toAccountID, amount, err)
	}
	if err := s.accountRepo.UpdateAccountBalance(ctx, toAccountID, newToBalance); err != nil {
		s.rollbackDeposit(ctx, toAccountID, amount)
		wrapped := fmt.Errorf("%w: update balance for %s: %v", apperrors.ErrPersistence, toAccountID, err)
		return s.compensateTransfer(ctx, fromAccountID, toAccountID, amount, wrapped)
	}
	s.ledger.Record(ctx, toAccountID, domain.TxTransferIn, amount, domain.TxSuccess,
		fmt.Sprintf("From %s, new balance=%s", fromAccountID, newToBalance))

	s.audit.Log(ctx, actionTransfer, fromAccountID, amount, domain.AuditSuccess,
		fmt.Sprintf("From %s to %s", fromAccountID, toAccountID))
	return nil
}

// compensateTransfer re-credits the source after a failed destination leg.
// The destination failure is recorded either way; cause is returned to the
// caller unless the compensation itself cannot be applied, in which case the
// stranded amount is reported via PartialTransferError.
func (s *BankService) compensateTransfer(ctx context.Context, fromAccountID, toAccountID string, amount decimal.Decimal, cause error) error {
	s.ledger.Record(ctx, toAccountID, domain.TxTransferIn, amount, domain.TxFailed, cause.Error())

	restoredBalance, err := s.registry.ApplyDeposit(fromAccountID, amount)
	if err != nil {
		partial := &apperrors.PartialTransferError{
			FromAccountID: fromAccountID,
			ToAccountID:   toAccountID,
			Amount:        amount,
			Cause:         cause,
		}
		s.audit.Log(ctx, actionTransfer, fromAccountID, amount, domain.AuditFailed, partial.Error())
		return partial
	}

	if err := s.accountRepo.UpdateAccountBalance(ctx, fromAccountID, restoredBalance); err != nil {
		// The registry balance is restored; only the durable mirror is stale.
		middleware.GetLoggerFromCtx(ctx).Error("Failed to persist transfer reversal",
			slog.String("account_id", fromAccountID),
			slog.String("error", err.Error()))
	}
	s.ledger.Record(ctx, fromAccountID, domain.TxTransferIn, amount, domain.TxSuccess,
		fmt.Sprintf("Reversal of failed transfer to %s, new balance=%s", toAccountID, restoredBalance))
	s.audit.Log(ctx, actionTransfer, fromAccountID, amount, domain.AuditFailed,
		fmt.Sprintf("Destination leg failed, source re-credited: %v", cause))
	return cause
}

// CloseAccount marks an account CLOSED in the store and the registry. The
// store is updated first so memory never runs ahead of it.
func (s *BankService) CloseAccount(ctx context.Context, accountID string) error {
	account, err := s.registry.Get(accountID)
	if err != nil {
		s.audit.Log(ctx, actionCloseAccount, accountID, decimal.Zero, domain.AuditFailed, "Account not found")
		return err
	}
	if account.Status == domain.StatusClosed {
		s.audit.Log(ctx, actionCloseAccount, accountID, decimal.Zero, domain.AuditFailed, "Already closed")
		return fmt.Errorf("%w: %s", apperrors.ErrAlreadyClosed, accountID)
	}

	if err := s.accountRepo.CloseAccount(ctx, accountID); err != nil {
		wrapped := fmt.Errorf("%w: close account %s: %v", apperrors.ErrPersistence, accountID, err)
		s.audit.Log(ctx, actionCloseAccount, accountID, decimal.Zero, domain.AuditFailed, wrapped.Error())
		return wrapped
	}
	if err := s.registry.Close(accountID); err != nil {
		s.audit.Log(ctx, actionCloseAccount, accountID, decimal.Zero, domain.AuditFailed, err.Error())
		return err
	}

	s.audit.Log(ctx, actionCloseAccount, accountID, decimal.Zero, domain.AuditSuccess, "Account closed")
	return nil
}

// BankSummary aggregates the whole registry.
func (s *BankService) BankSummary(ctx context.Context) domain.BankSummary {
	summary := s.registry.Summary()
	s.audit.Log(ctx, actionBankSummary, "", summary.TotalBalance, domain.AuditSuccess,
		fmt.Sprintf("Accounts=%d, active=%d", summary.TotalAccounts, summary.ActiveAccounts))
	return summary
}

// ListTransactions returns the persisted transaction history of an account,
// oldest first.
func (s *BankService) ListTransactions(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	if _, err := s.registry.Get(accountID); err != nil {
		s.audit.Log(ctx, actionListTransactions, accountID, decimal.Zero, domain.AuditFailed, "Account not found")
		return nil, err
	}
	transactions, err := s.ledger.History(ctx, accountID)
	if err != nil {
		wrapped := fmt.Errorf("%w: list transactions for %s: %v", apperrors.ErrPersistence, accountID, err)
		s.audit.Log(ctx, actionListTransactions, accountID, decimal.Zero, domain.AuditFailed, wrapped.Error())
		return nil, wrapped
	}
	s.audit.Log(ctx, actionListTransactions, accountID, decimal.Zero, domain.AuditSuccess,
		fmt.Sprintf("%d transactions", len(transactions)))
	return transactions, nil
}

// RecentAuditEntries returns the newest persisted audit entries, newest
// first. Reading the trail is deliberately not audited itself.
func (s *BankService) RecentAuditEntries(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	entries, err := s.audit.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch audit entries: %v", apperrors.ErrPersistence, err)
	}
	return entries, nil
}

// LoadAccountsFromStore bulk-loads the registry from the persisted account
// records. Called once at startup, before any traffic is served.
func (s *BankService) LoadAccountsFromStore(ctx context.Context) error {
	accounts, err := s.accountRepo.FindAllAccounts(ctx)
	if err != nil {
		wrapped := fmt.Errorf("%w: fetch accounts: %v", apperrors.ErrPersistence, err)
		s.audit.Log(ctx, actionLoadAccounts, "", decimal.Zero, domain.AuditFailed, wrapped.Error())
		return wrapped
	}
	s.registry.LoadBulk(accounts)
	s.audit.Log(ctx, actionLoadAccounts, "", decimal.Zero, domain.AuditSuccess,
		fmt.Sprintf("%d accounts loaded", len(accounts)))
	return nil
}

func (s *BankService) rollbackDeposit(ctx context.Context, accountID string, amount decimal.Decimal) {
	if _, err := s.registry.ApplyWithdraw(accountID, amount); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to roll back deposit",
			slog.String("account_id", accountID),
			slog.String("error", err.Error()))
	}
}

func (s *BankService) rollbackWithdraw(ctx context.Context, accountID string, amount decimal.Decimal) {
	if _, err := s.registry.ApplyDeposit(accountID, amount); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to roll back withdrawal",
			slog.String("account_id", accountID),
			slog.String("error", err.Error()))
	}
}
