package main

import (
	"context"
	"errors"
	"fmt"

	"ratebeat/internal/store"
)

func bootstrapDemoData(ctx context.Context, dataStore *store.Store) error {
	if err := ensureCatalog(ctx, dataStore); err != nil {
		return err
	}
	if err := ensureDemoUser(ctx, dataStore); err != nil {
		return err
	}
	return nil
}

// ensureCatalog forces the first catalog read so the seed lands before any
// request arrives. Subsequent calls are no-ops.
func ensureCatalog(ctx context.Context, dataStore *store.Store) error {
	if _, err := dataStore.Artists(ctx); err != nil {
		return fmt.Errorf("bootstrap catalog: %w", err)
	}
	return nil
}

func ensureDemoUser(ctx context.Context, dataStore *store.Store) error {
	if _, err := dataStore.CreateUser(ctx, "Demo Listener", "demo@ratebeat.local", "demo123"); err != nil && !errors.Is(err, store.ErrUserExists) {
		return fmt.Errorf("bootstrap demo user: %w", err)
	}
	return nil
}
