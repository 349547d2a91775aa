package main

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"cairo_tours/internal/adapters/observability"
	"cairo_tours/internal/adapters/tablestore"
	"cairo_tours/internal/domain"
	"cairo_tours/internal/shared"
)

// Loads the initial Cairo catalog into the remote store. Safe to
// re-run: rows whose name already exists in their table are skipped.
func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)
	log.Info().
		Str("store", cfg.StoreBase).
		Int("workers", cfg.SeedWorkers).
		Msg("seeder starting")

	store, err := tablestore.New(cfg.StoreBase, cfg.StoreKey, cfg.StoreRPS)
	if err != nil {
		log.Fatal().Err(err).Msg("table store client init failed")
	}

	sem := semaphore.NewWeighted(int64(cfg.SeedWorkers))
	var wg sync.WaitGroup

	seedTable(ctx, store, sem, &wg, domain.TableHotels, asRows(shared.SeedHotels, func(h domain.Hotel) string { return h.Name }))
	seedTable(ctx, store, sem, &wg, domain.TableRestaurants, asRows(shared.SeedRestaurants, func(r domain.Restaurant) string { return r.Name }))
	seedTable(ctx, store, sem, &wg, domain.TableSightseeing, asRows(shared.SeedSightseeing, func(s domain.Sightseeing) string { return s.Name }))

	wg.Wait()
	log.Info().Msg("seeding completed")
}

type seedRow struct {
	name string
	row  any
}

func asRows[T any](in []T, name func(T) string) []seedRow {
	out := make([]seedRow, 0, len(in))
	for _, v := range in {
		out = append(out, seedRow{name: name(v), row: v})
	}
	return out
}

func seedTable(ctx context.Context, store *tablestore.Client, sem *semaphore.Weighted, wg *sync.WaitGroup, table string, rows []seedRow) {
	existing := existingNames(ctx, store, table)

	for _, sr := range rows {
		if _, ok := existing[strings.ToLower(sr.name)]; ok {
			log.Info().Str("table", table).Str("name", sr.name).Msg("already seeded, skipping")
			continue
		}

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(sr seedRow) {
			defer wg.Done()
			defer sem.Release(1)

			if err := store.Insert(ctx, table, sr.row, nil); err != nil {
				log.Warn().Str("table", table).Str("name", sr.name).Err(err).Msg("seed insert failed")
				return
			}
			log.Info().Str("table", table).Str("name", sr.name).Msg("seeded")
		}(sr)
	}
}

func existingNames(ctx context.Context, store *tablestore.Client, table string) map[string]struct{} {
	var rows []struct {
		Name string `json:"name"`
	}
	if err := store.Select(ctx, table, &rows); err != nil {
		log.Warn().Str("table", table).Err(err).Msg("could not list existing rows; seeding all")
		return map[string]struct{}{}
	}
	out := make(map[string]struct{}, len(rows))
	for _, r := range rows {
		out[strings.ToLower(r.Name)] = struct{}{}
	}
	return out
}
