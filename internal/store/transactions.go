package store

import "context"

// TransactionsByUser returns the user's ledger rows in append order.
func (s *Store) TransactionsByUser(ctx context.Context, userID string) []Transaction {
	var transactions []Transaction
	for _, txn := range loadCollection(ctx, s, transactionsKey, []Transaction{}) {
		if txn.UserID == userID {
			transactions = append(transactions, txn)
		}
	}
	return transactions
}

// SaveTransaction appends one ledger row. The ledger is append-only: rows
// are never merged, deduplicated or rewritten.
func (s *Store) SaveTransaction(ctx context.Context, txn Transaction) error {
	transactions := loadCollection(ctx, s, transactionsKey, []Transaction{})
	transactions = append(transactions, txn)
	return saveCollection(ctx, s, transactionsKey, transactions)
}

// BalanceOf folds the user's signed amounts. The balance is recomputed from
// the full ledger on every call; nothing is cached.
func (s *Store) BalanceOf(ctx context.Context, userID string) float64 {
	var balance float64
	for _, txn := range s.TransactionsByUser(ctx, userID) {
		balance += txn.Amount
	}
	return balance
}
