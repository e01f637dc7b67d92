package store

import (
	"context"
	"fmt"
)

// MaxDailyRatings caps how many new artists a user may rate per local
// calendar day.
const MaxDailyRatings = 50

// RatingsByUser returns every rating authored by the user, in storage order.
func (s *Store) RatingsByUser(ctx context.Context, userID string) []Rating {
	var ratings []Rating
	for _, rating := range loadCollection(ctx, s, ratingsKey, []Rating{}) {
		if rating.UserID == userID {
			ratings = append(ratings, rating)
		}
	}
	return ratings
}

// RatingsByArtist returns every rating an artist has received.
func (s *Store) RatingsByArtist(ctx context.Context, artistID string) []Rating {
	var ratings []Rating
	for _, rating := range loadCollection(ctx, s, ratingsKey, []Rating{}) {
		if rating.ArtistID == artistID {
			ratings = append(ratings, rating)
		}
	}
	return ratings
}

// SaveRating records a rating. A prior rating for the same (user, artist)
// pair is overwritten in its slot and does not advance the daily quota; a
// new pair appends and counts one against today's quota.
func (s *Store) SaveRating(ctx context.Context, rating Rating) error {
	ratings := loadCollection(ctx, s, ratingsKey, []Rating{})
	replaced := false
	for i := range ratings {
		if ratings[i].UserID == rating.UserID && ratings[i].ArtistID == rating.ArtistID {
			ratings[i] = rating
			replaced = true
			break
		}
	}
	if !replaced {
		ratings = append(ratings, rating)
		if err := s.incrementDailyRatingCount(ctx, rating.UserID); err != nil {
			return err
		}
	}
	return saveCollection(ctx, s, ratingsKey, ratings)
}

// DailyRatingCount returns how many new ratings the user created today.
func (s *Store) DailyRatingCount(ctx context.Context, userID string) int {
	today := s.today()
	for _, limit := range loadCollection(ctx, s, dailyLimitsKey, []DailyRatingLimit{}) {
		if limit.UserID == userID && limit.Date == today {
			return limit.Count
		}
	}
	return 0
}

// HasReachedDailyLimit reports whether the user exhausted today's quota.
func (s *Store) HasReachedDailyLimit(ctx context.Context, userID string) bool {
	return s.DailyRatingCount(ctx, userID) >= MaxDailyRatings
}

func (s *Store) incrementDailyRatingCount(ctx context.Context, userID string) error {
	today := s.today()
	limits := loadCollection(ctx, s, dailyLimitsKey, []DailyRatingLimit{})
	found := false
	for i := range limits {
		if limits[i].UserID == userID && limits[i].Date == today {
			limits[i].Count++
			found = true
			break
		}
	}
	if !found {
		limits = append(limits, DailyRatingLimit{UserID: userID, Date: today, Count: 1})
	}
	if err := saveCollection(ctx, s, dailyLimitsKey, limits); err != nil {
		return fmt.Errorf("increment daily rating count: %w", err)
	}
	return nil
}
