package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"ratebeat/internal/app/ratings"
	"ratebeat/internal/store"
)

// UserService captures the account operations needed by the HTTP handlers.
type UserService interface {
	Signup(ctx context.Context, name, email, password string) (store.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	Profile(ctx context.Context, userID string) (store.User, error)
}

// CatalogService describes read access to the artist catalog.
type CatalogService interface {
	List(ctx context.Context) ([]store.Artist, error)
	Get(ctx context.Context, id string) (store.Artist, error)
	Ratings(ctx context.Context, artistID string) ([]store.Rating, error)
}

// RatingService coordinates artist selection and rating submission.
type RatingService interface {
	NextArtist(ctx context.Context, userID string) (store.Artist, error)
	Submit(ctx context.Context, userID, artistID string, score int, comment string) (store.Rating, error)
	ListByUser(ctx context.Context, userID string) ([]store.Rating, error)
	QuotaFor(ctx context.Context, userID string) (ratings.Quota, error)
}

// WalletService exposes balance, history and withdrawal workflows.
type WalletService interface {
	Transactions(ctx context.Context, userID string) ([]store.Transaction, error)
	Balance(ctx context.Context, userID string) (float64, error)
	Withdraw(ctx context.Context, userID string) (store.Transaction, error)
}

// TokenVerifier resolves bearer tokens to user ids.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// Server wires HTTP handlers to the underlying services.
type Server struct {
	users   UserService
	catalog CatalogService
	ratings RatingService
	wallet  WalletService
	tokens  TokenVerifier
}

// New configures a Server with the given service implementations.
func New(users UserService, catalog CatalogService, ratingSvc RatingService, wallet WalletService, tokens TokenVerifier) *Server {
	return &Server{
		users:   users,
		catalog: catalog,
		ratings: ratingSvc,
		wallet:  wallet,
		tokens:  tokens,
	}
}

// Routes exposes the HTTP handlers for accounts, the catalog, ratings and
// the reward wallet.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("POST /api/v1/auth/signup", s.handleSignup)
	mux.HandleFunc("POST /api/v1/auth/login", s.handleLogin)
	mux.HandleFunc("GET /api/v1/me", s.handleProfile)

	mux.HandleFunc("GET /api/v1/artists", s.handleListArtists)
	mux.HandleFunc("GET /api/v1/artists/{id}", s.handleGetArtist)
	mux.HandleFunc("GET /api/v1/artists/{id}/ratings", s.handleArtistRatings)

	mux.HandleFunc("GET /api/v1/me/next-artist", s.handleNextArtist)
	mux.HandleFunc("POST /api/v1/me/ratings", s.handleSubmitRating)
	mux.HandleFunc("GET /api/v1/me/ratings", s.handleMyRatings)
	mux.HandleFunc("GET /api/v1/me/quota", s.handleQuota)

	mux.HandleFunc("GET /api/v1/me/transactions", s.handleTransactions)
	mux.HandleFunc("GET /api/v1/me/balance", s.handleBalance)
	mux.HandleFunc("POST /api/v1/me/withdrawals", s.handleWithdraw)

	return mux
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

func extractToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// currentUser resolves the request's bearer token to a user id, writing a
// 401 response when it cannot.
func (s *Server) currentUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	token := extractToken(r)
	if token == "" {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authorization required"})
		return "", false
	}

	userID, err := s.tokens.Verify(token)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid or expired token"})
		return "", false
	}
	return userID, true
}
