package app

import (
	"errors"
	"fmt"
	"strings"

	"cairo_tours/internal/domain"
)

// ErrInvalid tags validation failures so the HTTP layer can map them
// to 422 instead of a store error.
var ErrInvalid = errors.New("invalid form")

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// Field describes one input of an entity's admin form. The admin
// client renders its generic add/edit dialog from this schema instead
// of hard-coding fields per entity.
type Field struct {
	Name     string   `json:"name"`
	Kind     string   `json:"kind"` // text | textarea | number | select | url
	Required bool     `json:"required"`
	Options  []string `json:"options,omitempty"`
}

// FormSchema returns the declared field set for an admin-editable
// entity (messages are not created through the admin form).
func FormSchema(entity string) ([]Field, bool) {
	switch entity {
	case domain.TableHotels:
		return []Field{
			{Name: "name", Kind: "text", Required: true},
			{Name: "location", Kind: "text", Required: true},
			{Name: "price", Kind: "number", Required: true},
			{Name: "amenities", Kind: "text"},
			{Name: "rating", Kind: "number", Required: true},
			{Name: "description", Kind: "textarea", Required: true},
			{Name: "image_url", Kind: "url"},
			{Name: "map_url", Kind: "url"},
		}, true
	case domain.TableRestaurants:
		return []Field{
			{Name: "name", Kind: "text", Required: true},
			{Name: "location", Kind: "text", Required: true},
			{Name: "cuisine", Kind: "text", Required: true},
			{Name: "price", Kind: "number", Required: true},
			{Name: "rating", Kind: "number", Required: true},
			{Name: "description", Kind: "textarea", Required: true},
			{Name: "image_url", Kind: "url"},
			{Name: "map_url", Kind: "url"},
		}, true
	case domain.TableSightseeing:
		return []Field{
			{Name: "name", Kind: "text", Required: true},
			{Name: "location", Kind: "text", Required: true},
			{Name: "type", Kind: "select", Required: true,
				Options: []string{string(domain.SiteHistorical), string(domain.SiteReligious), string(domain.SiteNatural)}},
			{Name: "ticket_price", Kind: "number"},
			{Name: "rating", Kind: "number", Required: true},
			{Name: "description", Kind: "textarea", Required: true},
			{Name: "image_url", Kind: "url"},
			{Name: "map_url", Kind: "url"},
		}, true
	}
	return nil, false
}

// HotelForm is the typed draft behind the hotel add/edit dialog.
// Number fields are pointers so a missing value is distinguishable
// from zero.
type HotelForm struct {
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Price       *float64 `json:"price"`
	Rating      *float64 `json:"rating"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	MapURL      string   `json:"map_url"`
	Amenities   string   `json:"amenities"`
}

func (f HotelForm) Validate() error {
	if err := required("name", f.Name); err != nil {
		return err
	}
	if err := required("location", f.Location); err != nil {
		return err
	}
	if f.Price == nil {
		return invalidf("price is required")
	}
	if *f.Price < 0 {
		return invalidf("price must not be negative")
	}
	if err := checkRating(f.Rating); err != nil {
		return err
	}
	return required("description", f.Description)
}

func (f HotelForm) Row() domain.Hotel {
	return domain.Hotel{
		Name:        f.Name,
		Location:    f.Location,
		Price:       deref(f.Price),
		Rating:      deref(f.Rating),
		Description: f.Description,
		ImageURL:    f.ImageURL,
		MapURL:      f.MapURL,
		Amenities:   f.Amenities,
	}
}

func (f HotelForm) Patch() map[string]any {
	return map[string]any{
		"name":        f.Name,
		"location":    f.Location,
		"price":       deref(f.Price),
		"rating":      deref(f.Rating),
		"description": f.Description,
		"image_url":   f.ImageURL,
		"map_url":     f.MapURL,
		"amenities":   f.Amenities,
	}
}

type RestaurantForm struct {
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Cuisine     string   `json:"cuisine"`
	Price       *float64 `json:"price"`
	Rating      *float64 `json:"rating"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	MapURL      string   `json:"map_url"`
}

func (f RestaurantForm) Validate() error {
	if err := required("name", f.Name); err != nil {
		return err
	}
	if err := required("location", f.Location); err != nil {
		return err
	}
	if err := required("cuisine", f.Cuisine); err != nil {
		return err
	}
	if f.Price == nil {
		return invalidf("price is required")
	}
	if *f.Price < 0 {
		return invalidf("price must not be negative")
	}
	if err := checkRating(f.Rating); err != nil {
		return err
	}
	return required("description", f.Description)
}

func (f RestaurantForm) Row() domain.Restaurant {
	return domain.Restaurant{
		Name:        f.Name,
		Location:    f.Location,
		Cuisine:     f.Cuisine,
		Price:       deref(f.Price),
		Rating:      deref(f.Rating),
		Description: f.Description,
		ImageURL:    f.ImageURL,
		MapURL:      f.MapURL,
	}
}

func (f RestaurantForm) Patch() map[string]any {
	return map[string]any{
		"name":        f.Name,
		"location":    f.Location,
		"cuisine":     f.Cuisine,
		"price":       deref(f.Price),
		"rating":      deref(f.Rating),
		"description": f.Description,
		"image_url":   f.ImageURL,
		"map_url":     f.MapURL,
	}
}

type SightseeingForm struct {
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Type        string   `json:"type"`
	TicketPrice *float64 `json:"ticket_price"`
	Rating      *float64 `json:"rating"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	MapURL      string   `json:"map_url"`
}

func (f SightseeingForm) Validate() error {
	if err := required("name", f.Name); err != nil {
		return err
	}
	if err := required("location", f.Location); err != nil {
		return err
	}
	if !domain.SiteType(f.Type).Valid() {
		return invalidf("type must be one of Historical, Religious, Natural")
	}
	if f.TicketPrice != nil && *f.TicketPrice < 0 {
		return invalidf("ticket_price must not be negative")
	}
	if err := checkRating(f.Rating); err != nil {
		return err
	}
	return required("description", f.Description)
}

func (f SightseeingForm) Row() domain.Sightseeing {
	return domain.Sightseeing{
		Name:        f.Name,
		Location:    f.Location,
		Type:        domain.SiteType(f.Type),
		TicketPrice: deref(f.TicketPrice),
		Rating:      deref(f.Rating),
		Description: f.Description,
		ImageURL:    f.ImageURL,
		MapURL:      f.MapURL,
	}
}

func (f SightseeingForm) Patch() map[string]any {
	return map[string]any{
		"name":         f.Name,
		"location":     f.Location,
		"type":         f.Type,
		"ticket_price": deref(f.TicketPrice),
		"rating":       deref(f.Rating),
		"description":  f.Description,
		"image_url":    f.ImageURL,
		"map_url":      f.MapURL,
	}
}

func required(name, v string) error {
	if strings.TrimSpace(v) == "" {
		return invalidf("%s is required", name)
	}
	return nil
}

// Ratings are validated at the input boundary only; storage does not
// enforce the range.
func checkRating(r *float64) error {
	if r == nil {
		return invalidf("rating is required")
	}
	if *r < 1 || *r > 5 {
		return invalidf("rating must be between 1 and 5")
	}
	return nil
}

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
