package httpapi

import (
	"errors"
	"net/http"

	"ratebeat/internal/store"
)

func (s *Server) handleListArtists(w http.ResponseWriter, r *http.Request) {
	artists, err := s.catalog.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "list artists failed"})
		return
	}
	writeJSON(w, http.StatusOK, artists)
}

func (s *Server) handleGetArtist(w http.ResponseWriter, r *http.Request) {
	artist, err := s.catalog.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, store.ErrArtistNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "artist not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "get artist failed"})
		return
	}
	writeJSON(w, http.StatusOK, artist)
}

func (s *Server) handleArtistRatings(w http.ResponseWriter, r *http.Request) {
	artistRatings, err := s.catalog.Ratings(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, store.ErrArtistNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "artist not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "list artist ratings failed"})
		return
	}
	if artistRatings == nil {
		artistRatings = []store.Rating{}
	}
	writeJSON(w, http.StatusOK, artistRatings)
}
