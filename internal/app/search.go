package app

import (
	"sort"
	"strings"

	"cairo_tours/internal/domain"
)

// Search filtering is pure and local to the mirror: it never issues a
// remote fetch and never mutates its input.

func FilterHotels(items []domain.Hotel, q string) []domain.Hotel {
	if q == "" {
		return items
	}
	out := make([]domain.Hotel, 0, len(items))
	for _, h := range items {
		if matches(q, h.Name, h.Location, h.Description) {
			out = append(out, h)
		}
	}
	return out
}

func FilterRestaurants(items []domain.Restaurant, q string) []domain.Restaurant {
	if q == "" {
		return items
	}
	out := make([]domain.Restaurant, 0, len(items))
	for _, r := range items {
		if matches(q, r.Name, r.Location, r.Cuisine, r.Description) {
			out = append(out, r)
		}
	}
	return out
}

func FilterSightseeing(items []domain.Sightseeing, q string) []domain.Sightseeing {
	if q == "" {
		return items
	}
	out := make([]domain.Sightseeing, 0, len(items))
	for _, s := range items {
		if matches(q, s.Name, s.Location, string(s.Type), s.Description) {
			out = append(out, s)
		}
	}
	return out
}

func FilterMessages(items []domain.Message, q string) []domain.Message {
	if q == "" {
		return items
	}
	out := make([]domain.Message, 0, len(items))
	for _, m := range items {
		if matches(q, m.SenderName, m.SenderEmail, m.Content) {
			out = append(out, m)
		}
	}
	return out
}

// BucketHotels keeps hotels in the given price bucket; "" and "all"
// keep everything.
func BucketHotels(items []domain.Hotel, bucket string) []domain.Hotel {
	if bucket == "" || bucket == "all" {
		return items
	}
	out := make([]domain.Hotel, 0, len(items))
	for _, h := range items {
		switch bucket {
		case domain.BucketBudget:
			if h.Price < 200 {
				out = append(out, h)
			}
		case domain.BucketMid:
			if h.Price >= 200 && h.Price < 300 {
				out = append(out, h)
			}
		case domain.BucketLuxury:
			if h.Price >= 300 {
				out = append(out, h)
			}
		}
	}
	return out
}

func FilterSiteType(items []domain.Sightseeing, t string) []domain.Sightseeing {
	if t == "" || t == "all" {
		return items
	}
	out := make([]domain.Sightseeing, 0, len(items))
	for _, s := range items {
		if strings.EqualFold(string(s.Type), t) {
			out = append(out, s)
		}
	}
	return out
}

// SortHotels orders a copy by the given key: price, -price, rating
// (descending) or name. Unknown keys keep the mirror order.
func SortHotels(items []domain.Hotel, key string) []domain.Hotel {
	out := make([]domain.Hotel, len(items))
	copy(out, items)
	switch key {
	case "price":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case "-price":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case "rating":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	case "name":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	}
	return out
}

func matches(q string, fields ...string) bool {
	q = strings.ToLower(q)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
