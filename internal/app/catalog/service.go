package catalog

import (
	"context"

	"ratebeat/internal/store"
)

// Store defines read access to the persisted artist catalog.
type Store interface {
	Artists(ctx context.Context) ([]store.Artist, error)
	ArtistByID(ctx context.Context, id string) (store.Artist, error)
	RatingsByArtist(ctx context.Context, artistID string) []store.Rating
}

// Service exposes catalog read workflows.
type Service interface {
	List(ctx context.Context) ([]store.Artist, error)
	Get(ctx context.Context, id string) (store.Artist, error)
	Ratings(ctx context.Context, artistID string) ([]store.Rating, error)
}

type service struct {
	store Store
}

// New constructs a catalog Service backed by the given Store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) List(ctx context.Context) ([]store.Artist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.Artists(ctx)
}

func (s *service) Get(ctx context.Context, id string) (store.Artist, error) {
	if err := ctx.Err(); err != nil {
		return store.Artist{}, err
	}
	return s.store.ArtistByID(ctx, id)
}

func (s *service) Ratings(ctx context.Context, artistID string) ([]store.Rating, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := s.store.ArtistByID(ctx, artistID); err != nil {
		return nil, err
	}
	return s.store.RatingsByArtist(ctx, artistID), nil
}
