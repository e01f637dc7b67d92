package wallet

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ratebeat/internal/store"
)

type fakeStore struct {
	transactions []store.Transaction
	saveErr      error
}

func (f *fakeStore) TransactionsByUser(ctx context.Context, userID string) []store.Transaction {
	var out []store.Transaction
	for _, txn := range f.transactions {
		if txn.UserID == userID {
			out = append(out, txn)
		}
	}
	return out
}

func (f *fakeStore) BalanceOf(ctx context.Context, userID string) float64 {
	var total float64
	for _, txn := range f.TransactionsByUser(ctx, userID) {
		total += txn.Amount
	}
	return total
}

func (f *fakeStore) SaveTransaction(ctx context.Context, txn store.Transaction) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.transactions = append(f.transactions, txn)
	return nil
}

func credits(userID string, n int) []store.Transaction {
	base := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	var out []store.Transaction
	for i := 0; i < n; i++ {
		out = append(out, store.Transaction{
			ID:        "t" + string(rune('0'+i)),
			UserID:    userID,
			Amount:    3,
			Type:      store.TransactionRating,
			Status:    store.StatusCompleted,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}
	return out
}

func TestWithdrawBelowMinimum(t *testing.T) {
	// 8 ratings put the balance at 24, one short of the minimum.
	fs := &fakeStore{transactions: credits("u1", 8)}
	svc := New(fs)

	_, err := svc.Withdraw(context.Background(), "u1")
	assert.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Len(t, fs.transactions, 8, "rejected withdrawal must not append")
}

func TestWithdrawDebitsFlatFee(t *testing.T) {
	fs := &fakeStore{transactions: credits("u1", 17)} // balance 51
	svc := New(fs)

	txn, err := svc.Withdraw(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, -WithdrawalFee, txn.Amount)
	assert.Equal(t, store.TransactionWithdrawal, txn.Type)
	assert.Equal(t, store.StatusCompleted, txn.Status, "the fee settles immediately")
	assert.NotEmpty(t, txn.ID)

	balance, err := svc.Balance(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 26.0, balance)
}

func TestWithdrawAtExactMinimum(t *testing.T) {
	fs := &fakeStore{transactions: []store.Transaction{{
		ID: "t1", UserID: "u1", Amount: 25, Type: store.TransactionRating,
		Status: store.StatusCompleted, CreatedAt: time.Now(),
	}}}
	svc := New(fs)

	_, err := svc.Withdraw(context.Background(), "u1")
	require.NoError(t, err)

	balance, err := svc.Balance(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 0.0, balance)
}

func TestBalanceEmptyLedger(t *testing.T) {
	svc := New(&fakeStore{})

	balance, err := svc.Balance(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 0.0, balance)
}

func TestTransactionsNewestFirst(t *testing.T) {
	fs := &fakeStore{transactions: credits("u1", 3)}
	svc := New(fs)

	transactions, err := svc.Transactions(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, transactions, 3)
	assert.True(t, transactions[0].CreatedAt.After(transactions[1].CreatedAt))
	assert.True(t, transactions[1].CreatedAt.After(transactions[2].CreatedAt))
}
