package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// Collection keys in the collections table.
const (
	usersKey        = "users"
	artistsKey      = "artists"
	ratingsKey      = "ratings"
	transactionsKey = "transactions"
	dailyLimitsKey  = "daily-rating-limits"
)

var (
	// ErrUserExists signals the email is already registered.
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidCredentials indicates a login failure.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUserNotFound indicates a lookup for an unknown account.
	ErrUserNotFound = errors.New("user not found")
	// ErrArtistNotFound indicates a lookup for an artist outside the catalog.
	ErrArtistNotFound = errors.New("artist not found")
)

// Store provides collection-keyed persistence backed by Postgres. Each named
// collection lives in one JSON document that is replaced wholesale on save;
// the server process is the single writer.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// New sets up a Store using the provided database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// loadCollection reads the named collection, falling back to def when the
// document is absent or unreadable. Read failures are logged, never
// returned: callers always get a usable value.
func loadCollection[T any](ctx context.Context, s *Store, key string, def T) T {
	var doc []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT doc
		FROM collections
		WHERE key = $1
	`, key).Scan(&doc)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Warn().Err(err).Str("collection", key).Msg("load collection")
		}
		return def
	}

	var value T
	if err := json.Unmarshal(doc, &value); err != nil {
		log.Warn().Err(err).Str("collection", key).Msg("decode collection")
		return def
	}
	return value
}

// saveCollection replaces the named collection with value.
func saveCollection[T any](ctx context.Context, s *Store, key string, value T) error {
	doc, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", key, err)
	}

	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO collections (key, doc, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE
		SET doc = EXCLUDED.doc, updated_at = NOW()
	`, key, doc); err != nil {
		return fmt.Errorf("save collection %s: %w", key, err)
	}
	return nil
}

// today returns the store clock's local calendar date. Quota records key on
// this string, so counters reset at local midnight rather than on a rolling
// 24-hour window.
func (s *Store) today() string {
	return s.now().Format("2006-01-02")
}
