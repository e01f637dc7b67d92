package httpapi

import (
	"errors"
	"net/http"

	"ratebeat/internal/app/wallet"
	"ratebeat/internal/store"
)

type balanceResponse struct {
	Balance float64 `json:"balance"`
}

func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.currentUser(w, r)
	if !ok {
		return
	}

	transactions, err := s.wallet.Transactions(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "list transactions failed"})
		return
	}
	if transactions == nil {
		transactions = []store.Transaction{}
	}
	writeJSON(w, http.StatusOK, transactions)
}

func (s *Server) handleBalance(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.currentUser(w, r)
	if !ok {
		return
	}

	balance, err := s.wallet.Balance(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "load balance failed"})
		return
	}
	writeJSON(w, http.StatusOK, balanceResponse{Balance: balance})
}

func (s *Server) handleWithdraw(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.currentUser(w, r)
	if !ok {
		return
	}

	txn, err := s.wallet.Withdraw(r.Context(), userID)
	if err != nil {
		if errors.Is(err, wallet.ErrInsufficientBalance) {
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "insufficient balance for withdrawal"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "withdrawal failed"})
		return
	}

	writeJSON(w, http.StatusCreated, txn)
}
