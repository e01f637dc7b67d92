package store

import (
	"context"
	"encoding/json"
	"testing"
)

func TestBalanceOf(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want float64
	}{
		{name: "empty ledger", doc: `[]`, want: 0},
		{
			name: "credits only",
			doc: `[
				{"id":"t1","userId":"u1","amount":3,"type":"rating","status":"completed","createdAt":"2026-08-30T10:00:00Z"},
				{"id":"t2","userId":"u1","amount":3,"type":"rating","status":"completed","createdAt":"2026-08-30T11:00:00Z"}
			]`,
			want: 6,
		},
		{
			name: "mixed signs",
			doc: `[
				{"id":"t1","userId":"u1","amount":3,"type":"rating","status":"completed","createdAt":"2026-08-30T10:00:00Z"},
				{"id":"t2","userId":"u1","amount":-25,"type":"withdrawal","status":"completed","createdAt":"2026-08-30T11:00:00Z"},
				{"id":"t3","userId":"u1","amount":3,"type":"rating","status":"completed","createdAt":"2026-08-30T12:00:00Z"}
			]`,
			want: -19,
		},
		{
			name: "other users excluded",
			doc: `[
				{"id":"t1","userId":"u2","amount":300,"type":"rating","status":"completed","createdAt":"2026-08-30T10:00:00Z"},
				{"id":"t2","userId":"u1","amount":3,"type":"rating","status":"completed","createdAt":"2026-08-30T11:00:00Z"}
			]`,
			want: 3,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, mock := newTestStore(t)
			expectLoad(mock, transactionsKey, tc.doc)

			if got := s.BalanceOf(context.Background(), "u1"); got != tc.want {
				t.Fatalf("BalanceOf() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSaveTransactionAppends(t *testing.T) {
	s, mock := newTestStore(t)

	capture := &docCapture{}
	expectLoad(mock, transactionsKey, `[{"id":"t1","userId":"u1","amount":3,"type":"rating","status":"completed","createdAt":"2026-08-30T10:00:00Z"}]`)
	expectSave(mock, transactionsKey, capture)

	txn := Transaction{ID: "t2", UserID: "u1", Amount: -25, Type: TransactionWithdrawal, Status: StatusCompleted}
	if err := s.SaveTransaction(context.Background(), txn); err != nil {
		t.Fatalf("SaveTransaction() error: %v", err)
	}

	var transactions []Transaction
	if err := json.Unmarshal(capture.value, &transactions); err != nil {
		t.Fatalf("decode transactions: %v", err)
	}
	if len(transactions) != 2 {
		t.Fatalf("expected append, got %d rows", len(transactions))
	}
	if transactions[1].ID != "t2" || transactions[1].Amount != -25 {
		t.Fatalf("appended row mismatch: %+v", transactions[1])
	}
	// The prior row is untouched.
	if transactions[0].ID != "t1" || transactions[0].Amount != 3 {
		t.Fatalf("existing row mutated: %+v", transactions[0])
	}
}
