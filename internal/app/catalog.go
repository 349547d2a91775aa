package app

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"cairo_tours/internal/domain"
)

// Catalog composes the four entity mirrors. Each mirror has its own
// fetch lifecycle; there is no cross-entity ordering.
type Catalog struct {
	Hotels      *Mirror[domain.Hotel]
	Restaurants *Mirror[domain.Restaurant]
	Sightseeing *Mirror[domain.Sightseeing]
	Messages    *Mirror[domain.Message]
}

func NewCatalog(store domain.TableStore, cache domain.Cache, ttl time.Duration) *Catalog {
	ttlSec := int(ttl.Seconds())
	return &Catalog{
		Hotels:      NewMirror[domain.Hotel](store, cache, domain.TableHotels, ttlSec),
		Restaurants: NewMirror[domain.Restaurant](store, cache, domain.TableRestaurants, ttlSec),
		Sightseeing: NewMirror[domain.Sightseeing](store, cache, domain.TableSightseeing, ttlSec),
		Messages:    NewMirror[domain.Message](store, cache, domain.TableMessages, ttlSec),
	}
}

// WarmStart seeds mirrors from cached snapshots, when present.
func (c *Catalog) WarmStart(ctx context.Context) {
	c.Hotels.LoadSnapshot(ctx)
	c.Restaurants.LoadSnapshot(ctx)
	c.Sightseeing.LoadSnapshot(ctx)
	c.Messages.LoadSnapshot(ctx)
}

// RefreshAll fetches the four tables in parallel. A failed fetch does
// not abort the others; each mirror keeps its own error state and the
// first failure is reported.
func (c *Catalog) RefreshAll(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error { return c.Hotels.Refresh(ctx) })
	g.Go(func() error { return c.Restaurants.Refresh(ctx) })
	g.Go(func() error { return c.Sightseeing.Refresh(ctx) })
	g.Go(func() error { return c.Messages.Refresh(ctx) })
	return g.Wait()
}

// MarkRead flips a message's read flag, stamping read_at when marking
// read and clearing it when marking unread.
func (c *Catalog) MarkRead(ctx context.Context, id int64, read bool) (domain.Message, error) {
	patch := map[string]any{"is_read": read, "read_at": nil}
	if read {
		patch["read_at"] = time.Now().UTC().Format(time.RFC3339)
	}
	return c.Messages.Update(ctx, id, patch)
}
