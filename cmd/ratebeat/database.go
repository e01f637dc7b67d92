package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog/log"
)

const (
	dbPingTimeout    = 5 * time.Second
	dbMaxWait        = 30 * time.Second
	dbInitialBackoff = 500 * time.Millisecond
	dbMaxBackoff     = 5 * time.Second
)

// openDatabase establishes a database connection, retrying with backoff
// until the instance responds or dbMaxWait elapses. The collections document
// table lives behind this handle, so the server cannot start without it.
func openDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	deadline := time.Now().Add(dbMaxWait)
	backoff := dbInitialBackoff

	for attempt := 1; ; attempt++ {
		pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
		err = db.PingContext(pingCtx)
		cancel()

		if err == nil {
			if attempt > 1 {
				log.Info().Int("attempts", attempt).Msg("database reachable")
			}
			return db, nil
		}

		if ctx.Err() != nil || time.Now().After(deadline) {
			break
		}

		log.Warn().
			Err(err).
			Int("attempt", attempt).
			Dur("backoff", backoff).
			Msg("database not ready, retrying")

		time.Sleep(backoff)
		if backoff *= 2; backoff > dbMaxBackoff {
			backoff = dbMaxBackoff
		}
	}

	_ = db.Close()
	return nil, fmt.Errorf("ping database: %w", err)
}
