package main

import (
	"net/http"

	"ratebeat/internal/app/catalog"
	"ratebeat/internal/app/ratings"
	"ratebeat/internal/app/users"
	"ratebeat/internal/app/wallet"
	"ratebeat/internal/auth"
	"ratebeat/internal/http/middleware"
	"ratebeat/internal/httpapi"
	"ratebeat/internal/store"
)

func newHTTPHandler(cfg Config, dataStore *store.Store) http.Handler {
	tokens := auth.NewManager(cfg.JWTSecret)

	userSvc := users.New(dataStore, tokens)
	catalogSvc := catalog.New(dataStore)
	ratingSvc := ratings.New(dataStore)
	walletSvc := wallet.New(dataStore)

	handler := httpapi.New(userSvc, catalogSvc, ratingSvc, walletSvc, tokens).Routes()

	handler = middleware.RequestLogging()(handler)
	handler = middleware.Recovery()(handler)
	handler = middleware.CORS(cfg.AllowedOrigins)(handler)

	return handler
}
