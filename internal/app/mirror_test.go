package app_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"cairo_tours/internal/app"
	"cairo_tours/internal/domain"
)

func newHotelMirror(store *fakeStore) *app.Mirror[domain.Hotel] {
	return app.NewMirror[domain.Hotel](store, nil, domain.TableHotels, 60)
}

func ids(items []domain.Hotel) []int64 {
	out := make([]int64, len(items))
	for i, h := range items {
		out[i] = h.ID
	}
	return out
}

func TestMirror_AddPrepends(t *testing.T) {
	store := newFakeStore()
	store.seed(domain.TableHotels, hotelRow(3, "Nile Grand"), hotelRow(2, "Pyramids Inn"))
	m := newHotelMirror(store)

	if err := m.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if got := ids(m.Items()); !reflect.DeepEqual(got, []int64{3, 2}) {
		t.Fatalf("after refresh: %v", got)
	}

	created, err := m.Add(context.Background(), domain.Hotel{Name: "Zamalek Riverside", Location: "Cairo", Price: 260, Rating: 4.5, Description: "d"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if created.ID != 4 {
		t.Fatalf("expected store-assigned id 4, got %d", created.ID)
	}
	if got := ids(m.Items()); !reflect.DeepEqual(got, []int64{4, 3, 2}) {
		t.Fatalf("add must prepend: %v", got)
	}
}

func TestMirror_UpdateInPlace(t *testing.T) {
	store := newFakeStore()
	store.seed(domain.TableHotels, hotelRow(4, "a"), hotelRow(3, "b"), hotelRow(2, "c"))
	m := newHotelMirror(store)
	if err := m.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	updated, err := m.Update(context.Background(), 2, map[string]any{"rating": 4.5})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Rating != 4.5 {
		t.Fatalf("expected server-merged rating 4.5, got %v", updated.Rating)
	}
	items := m.Items()
	if got := ids(items); !reflect.DeepEqual(got, []int64{4, 3, 2}) {
		t.Fatalf("position must be unchanged: %v", got)
	}
	if items[2].Rating != 4.5 {
		t.Fatalf("entry 2 not updated: %+v", items[2])
	}
	if items[0].Rating != 4.0 || items[1].Rating != 4.0 {
		t.Fatalf("other entries altered: %+v", items)
	}
}

func TestMirror_DeleteKeepsOrder(t *testing.T) {
	store := newFakeStore()
	store.seed(domain.TableHotels, hotelRow(4, "a"), hotelRow(3, "b"), hotelRow(2, "c"))
	m := newHotelMirror(store)
	if err := m.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	if err := m.Delete(context.Background(), 3); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got := ids(m.Items()); !reflect.DeepEqual(got, []int64{4, 2}) {
		t.Fatalf("after delete: %v", got)
	}
}

func TestMirror_RefreshFailureKeepsItems(t *testing.T) {
	store := newFakeStore()
	store.seed(domain.TableHotels, hotelRow(2, "a"))
	m := newHotelMirror(store)
	if err := m.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	boom := errors.New("store unreachable")
	store.err = boom
	if err := m.Refresh(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected transport error, got %v", err)
	}
	if got := ids(m.Items()); !reflect.DeepEqual(got, []int64{2}) {
		t.Fatalf("failed refresh must leave items: %v", got)
	}
	if m.Err() == nil {
		t.Fatal("expected recorded error")
	}

	// retry succeeds and clears the error
	store.err = nil
	if err := m.Refresh(context.Background()); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if m.Err() != nil {
		t.Fatalf("error not cleared: %v", m.Err())
	}
}

func TestMirror_FirstFetchFailure(t *testing.T) {
	store := newFakeStore()
	store.err = errors.New("dial tcp: timeout")
	m := newHotelMirror(store)

	if err := m.Refresh(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if len(m.Items()) != 0 {
		t.Fatalf("items must stay empty: %v", m.Items())
	}
	if m.Loaded() {
		t.Fatal("mirror must not report loaded")
	}
}

func TestMirror_MutationFailureLeavesMirror(t *testing.T) {
	store := newFakeStore()
	store.seed(domain.TableHotels, hotelRow(2, "a"))
	m := newHotelMirror(store)
	if err := m.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	before := m.Items()

	store.err = errors.New("constraint violation")
	if _, err := m.Add(context.Background(), domain.Hotel{Name: "x"}); err == nil {
		t.Fatal("expected add error")
	}
	if _, err := m.Update(context.Background(), 2, map[string]any{"rating": 1.0}); err == nil {
		t.Fatal("expected update error")
	}
	if err := m.Delete(context.Background(), 2); err == nil {
		t.Fatal("expected delete error")
	}
	if !reflect.DeepEqual(before, m.Items()) {
		t.Fatalf("mirror changed on failure: %v != %v", before, m.Items())
	}
}

func TestMirror_RefreshIdempotent(t *testing.T) {
	store := newFakeStore()
	store.seed(domain.TableHotels, hotelRow(3, "a"), hotelRow(2, "b"))
	m := newHotelMirror(store)

	if err := m.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	first := m.Items()
	if err := m.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if !reflect.DeepEqual(first, m.Items()) {
		t.Fatalf("refetch against a stable store must be idempotent")
	}
}

func TestMirror_UpdateMissingID(t *testing.T) {
	store := newFakeStore()
	store.seed(domain.TableHotels, hotelRow(2, "a"))
	m := newHotelMirror(store)
	if err := m.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	if _, err := m.Update(context.Background(), 99, map[string]any{"rating": 2.0}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if got := ids(m.Items()); !reflect.DeepEqual(got, []int64{2}) {
		t.Fatalf("mirror changed: %v", got)
	}
}

func TestMirror_SnapshotWarmStart(t *testing.T) {
	store := newFakeStore()
	store.seed(domain.TableHotels, hotelRow(3, "a"), hotelRow(2, "b"))
	cache := &fakeCache{}

	m1 := app.NewMirror[domain.Hotel](store, cache, domain.TableHotels, 60)
	if err := m1.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	// a fresh mirror seeded from the snapshot serves the same rows but
	// does not claim a successful fetch
	m2 := app.NewMirror[domain.Hotel](store, cache, domain.TableHotels, 60)
	if !m2.LoadSnapshot(context.Background()) {
		t.Fatal("expected snapshot hit")
	}
	if got := ids(m2.Items()); !reflect.DeepEqual(got, []int64{3, 2}) {
		t.Fatalf("snapshot contents: %v", got)
	}
	if m2.Loaded() {
		t.Fatal("snapshot must not mark the mirror loaded")
	}
}
