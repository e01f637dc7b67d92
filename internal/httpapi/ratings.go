package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"ratebeat/internal/app/ratings"
	"ratebeat/internal/store"
)

type submitRatingRequest struct {
	ArtistID string `json:"artistId"`
	Score    int    `json:"score"`
	Comment  string `json:"comment"`
}

// nextArtistResponse carries either the artist to rate or the reason none is
// available, so the frontend can tell "limit reached" from "all rated".
type nextArtistResponse struct {
	Artist *store.Artist `json:"artist,omitempty"`
	Reason string        `json:"reason,omitempty"`
}

func (s *Server) handleNextArtist(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.currentUser(w, r)
	if !ok {
		return
	}

	artist, err := s.ratings.NextArtist(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, ratings.ErrDailyLimitReached):
			writeJSON(w, http.StatusOK, nextArtistResponse{Reason: "limit_reached"})
		case errors.Is(err, ratings.ErrAllArtistsRated):
			writeJSON(w, http.StatusOK, nextArtistResponse{Reason: "all_rated"})
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "next artist failed"})
		}
		return
	}

	writeJSON(w, http.StatusOK, nextArtistResponse{Artist: &artist})
}

func (s *Server) handleSubmitRating(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.currentUser(w, r)
	if !ok {
		return
	}

	var req submitRatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}

	rating, err := s.ratings.Submit(r.Context(), userID, req.ArtistID, req.Score, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, ratings.ErrInvalidScore):
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "score must be between 1 and 5"})
		case errors.Is(err, store.ErrArtistNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "artist not found"})
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "submit rating failed"})
		}
		return
	}

	writeJSON(w, http.StatusCreated, rating)
}

func (s *Server) handleMyRatings(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.currentUser(w, r)
	if !ok {
		return
	}

	userRatings, err := s.ratings.ListByUser(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "list ratings failed"})
		return
	}
	if userRatings == nil {
		userRatings = []store.Rating{}
	}
	writeJSON(w, http.StatusOK, userRatings)
}

func (s *Server) handleQuota(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.currentUser(w, r)
	if !ok {
		return
	}

	quota, err := s.ratings.QuotaFor(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "load quota failed"})
		return
	}
	writeJSON(w, http.StatusOK, quota)
}
