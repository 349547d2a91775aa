package app_test

import (
	"reflect"
	"testing"

	"cairo_tours/internal/app"
	"cairo_tours/internal/domain"
)

func sampleHotels() []domain.Hotel {
	return []domain.Hotel{
		{ID: 3, Name: "Nile Grand Palace", Location: "Garden City", Price: 350, Rating: 4.7, Description: "Nile-front terraces"},
		{ID: 2, Name: "Pyramids View Inn", Location: "Giza", Price: 120, Rating: 4.2, Description: "rooftop breakfast"},
		{ID: 1, Name: "Zamalek Riverside", Location: "Zamalek", Price: 260, Rating: 4.5, Description: "garden cafe"},
	}
}

func TestFilterHotels(t *testing.T) {
	hotels := sampleHotels()

	got := app.FilterHotels(hotels, "GIZA")
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("case-insensitive location match failed: %+v", got)
	}
	if got := app.FilterHotels(hotels, "terraces"); len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("description match failed: %+v", got)
	}
	if got := app.FilterHotels(hotels, "sphinx"); len(got) != 0 {
		t.Fatalf("expected no match: %+v", got)
	}

	// clearing the query restores the exact pre-filter view
	if got := app.FilterHotels(hotels, ""); !reflect.DeepEqual(got, sampleHotels()) {
		t.Fatal("empty query must restore the full view")
	}
	if !reflect.DeepEqual(hotels, sampleHotels()) {
		t.Fatal("filtering must not mutate its input")
	}
}

func TestFilterRestaurantsByCuisine(t *testing.T) {
	items := []domain.Restaurant{
		{ID: 2, Name: "Felfela", Location: "Downtown", Cuisine: "Egyptian"},
		{ID: 1, Name: "Kadoura", Location: "Mohandessin", Cuisine: "Seafood"},
	}
	got := app.FilterRestaurants(items, "seafood")
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("cuisine match failed: %+v", got)
	}
}

func TestFilterMessages(t *testing.T) {
	items := []domain.Message{
		{ID: 2, SenderName: "Omar", SenderEmail: "omar@example.com", Content: "day trips?"},
		{ID: 1, SenderName: "Ana", SenderEmail: "ana@example.com", Content: "hotel prices"},
	}
	if got := app.FilterMessages(items, "omar"); len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("sender match failed: %+v", got)
	}
	if got := app.FilterMessages(items, "prices"); len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("content match failed: %+v", got)
	}
}

func TestBucketHotels(t *testing.T) {
	hotels := sampleHotels()

	if got := app.BucketHotels(hotels, domain.BucketBudget); len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("budget bucket: %+v", got)
	}
	if got := app.BucketHotels(hotels, domain.BucketMid); len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("mid bucket: %+v", got)
	}
	if got := app.BucketHotels(hotels, domain.BucketLuxury); len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("luxury bucket: %+v", got)
	}
	if got := app.BucketHotels(hotels, "all"); len(got) != 3 {
		t.Fatalf("all bucket: %+v", got)
	}
}

func TestFilterSiteType(t *testing.T) {
	items := []domain.Sightseeing{
		{ID: 3, Name: "Pyramids", Type: domain.SiteHistorical},
		{ID: 2, Name: "Al-Azhar Mosque", Type: domain.SiteReligious},
		{ID: 1, Name: "Al Azhar Park", Type: domain.SiteNatural},
	}
	if got := app.FilterSiteType(items, "religious"); len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("type filter: %+v", got)
	}
	if got := app.FilterSiteType(items, "all"); len(got) != 3 {
		t.Fatalf("all types: %+v", got)
	}
}

func TestSortHotels(t *testing.T) {
	hotels := sampleHotels()

	byPrice := app.SortHotels(hotels, "price")
	if byPrice[0].ID != 2 || byPrice[2].ID != 3 {
		t.Fatalf("price ascending: %+v", byPrice)
	}
	byRating := app.SortHotels(hotels, "rating")
	if byRating[0].ID != 3 {
		t.Fatalf("rating descending: %+v", byRating)
	}
	// unknown key keeps mirror order, input untouched either way
	if got := app.SortHotels(hotels, "bogus"); !reflect.DeepEqual(got, sampleHotels()) {
		t.Fatalf("unknown sort key: %+v", got)
	}
	if !reflect.DeepEqual(hotels, sampleHotels()) {
		t.Fatal("sorting must not mutate its input")
	}
}
