package domain

import (
	"context"
	"time"
)

// Row is any entity persisted by the remote table store.
type Row interface {
	RowID() int64
}

// Table names in the remote store.
const (
	TableHotels      = "hotels"
	TableRestaurants = "restaurants"
	TableSightseeing = "sightseeing"
	TableMessages    = "messages"
)

// TableStore is the hosted table service of record. The store assigns
// ids on insert and is the source of truth for every returned row.
type TableStore interface {
	// Select fetches all rows of a table into dst (a *[]T), ordered id-descending.
	Select(ctx context.Context, table string, dst any) error
	// Insert persists row and decodes the created row (with its id) into dst (a *T).
	Insert(ctx context.Context, table string, row any, dst any) error
	// Update applies a partial patch to the row matching id and decodes the
	// updated row into dst. ErrNotFound when no row matched.
	Update(ctx context.Context, table string, id int64, patch any, dst any) error
	// Delete removes the row matching id.
	Delete(ctx context.Context, table string, id int64) error
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// User is the identity attached to an admin session.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      User      `json:"user"`
}

// Sessions is the identity collaborator. Credential checking is
// delegated to the hosted identity endpoint; this port only brokers
// tokens and gates the admin surface.
type Sessions interface {
	SignIn(ctx context.Context, email, password string) (Session, error)
	SignOut(ctx context.Context, token string) error
	Verify(ctx context.Context, token string) (User, error)
}
