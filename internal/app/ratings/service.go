package ratings

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
	"time"

	"github.com/google/uuid"

	"ratebeat/internal/store"
)

// RatingReward is the credit granted for each submitted rating.
const RatingReward = 3.0

var (
	// ErrDailyLimitReached signals the user exhausted today's rating quota.
	ErrDailyLimitReached = errors.New("daily rating limit reached")
	// ErrAllArtistsRated signals the user has nothing left to rate.
	ErrAllArtistsRated = errors.New("all artists rated")
	// ErrInvalidScore rejects scores outside 1..5.
	ErrInvalidScore = errors.New("score must be between 1 and 5")
)

// Store defines the persistence hooks for rating workflows.
type Store interface {
	Artists(ctx context.Context) ([]store.Artist, error)
	ArtistByID(ctx context.Context, id string) (store.Artist, error)
	RatingsByUser(ctx context.Context, userID string) []store.Rating
	SaveRating(ctx context.Context, rating store.Rating) error
	DailyRatingCount(ctx context.Context, userID string) int
	HasReachedDailyLimit(ctx context.Context, userID string) bool
	SaveTransaction(ctx context.Context, txn store.Transaction) error
}

// Quota describes a user's standing against the daily rating cap.
type Quota struct {
	Used  int `json:"used"`
	Limit int `json:"limit"`
}

// Service coordinates artist selection and rating submission.
type Service interface {
	NextArtist(ctx context.Context, userID string) (store.Artist, error)
	Submit(ctx context.Context, userID, artistID string, score int, comment string) (store.Rating, error)
	ListByUser(ctx context.Context, userID string) ([]store.Rating, error)
	QuotaFor(ctx context.Context, userID string) (Quota, error)
}

type service struct {
	store Store
	pick  func(n int) int
	now   func() time.Time
}

// New constructs a ratings Service backed by the given Store. Selection
// among unrated artists is a uniform random draw.
func New(store Store) Service {
	return &service{store: store, pick: rand.IntN, now: time.Now}
}

// NextArtist returns a ratable artist the user has not rated yet. Nothing is
// reserved: repeated calls may return different artists until a rating
// lands, and the caller holds the shown artist for the interaction.
func (s *service) NextArtist(ctx context.Context, userID string) (store.Artist, error) {
	if err := ctx.Err(); err != nil {
		return store.Artist{}, err
	}

	if s.store.HasReachedDailyLimit(ctx, userID) {
		return store.Artist{}, ErrDailyLimitReached
	}

	artists, err := s.store.Artists(ctx)
	if err != nil {
		return store.Artist{}, err
	}

	rated := make(map[string]bool)
	for _, rating := range s.store.RatingsByUser(ctx, userID) {
		rated[rating.ArtistID] = true
	}

	var unrated []store.Artist
	for _, artist := range artists {
		if !rated[artist.ID] {
			unrated = append(unrated, artist)
		}
	}
	if len(unrated) == 0 {
		return store.Artist{}, ErrAllArtistsRated
	}

	return unrated[s.pick(len(unrated))], nil
}

// Submit stores the rating and credits the reward. Rating the same artist
// again overwrites the stored record without advancing the quota.
func (s *service) Submit(ctx context.Context, userID, artistID string, score int, comment string) (store.Rating, error) {
	if err := ctx.Err(); err != nil {
		return store.Rating{}, err
	}

	if score < 1 || score > 5 {
		return store.Rating{}, ErrInvalidScore
	}
	if _, err := s.store.ArtistByID(ctx, artistID); err != nil {
		return store.Rating{}, err
	}

	rating := store.Rating{
		ID:        uuid.NewString(),
		UserID:    userID,
		ArtistID:  artistID,
		Score:     score,
		Comment:   comment,
		CreatedAt: s.now(),
	}
	if err := s.store.SaveRating(ctx, rating); err != nil {
		return store.Rating{}, fmt.Errorf("save rating: %w", err)
	}

	credit := store.Transaction{
		ID:        uuid.NewString(),
		UserID:    userID,
		Amount:    RatingReward,
		Type:      store.TransactionRating,
		ArtistID:  artistID,
		Status:    store.StatusCompleted,
		CreatedAt: s.now(),
	}
	if err := s.store.SaveTransaction(ctx, credit); err != nil {
		return store.Rating{}, fmt.Errorf("record reward: %w", err)
	}
	return rating, nil
}

// ListByUser returns the user's ratings, newest first.
func (s *service) ListByUser(ctx context.Context, userID string) ([]store.Rating, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ratings := s.store.RatingsByUser(ctx, userID)
	sort.Slice(ratings, func(i, j int) bool {
		return ratings[i].CreatedAt.After(ratings[j].CreatedAt)
	})
	return ratings, nil
}

func (s *service) QuotaFor(ctx context.Context, userID string) (Quota, error) {
	if err := ctx.Err(); err != nil {
		return Quota{}, err
	}
	return Quota{
		Used:  s.store.DailyRatingCount(ctx, userID),
		Limit: store.MaxDailyRatings,
	}, nil
}
