package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"cairo_tours/internal/app"
	"cairo_tours/internal/domain"
)

type Handlers struct {
	Catalog  *app.Catalog
	Sessions domain.Sessions
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	// public catalog + contact
	s.mux.Get("/v1/hotels", h.listHotels)
	s.mux.Get("/v1/restaurants", h.listRestaurants)
	s.mux.Get("/v1/sightseeing", h.listSightseeing)
	s.mux.Post("/v1/contact", h.submitContact)

	// sessions
	s.mux.Post("/v1/auth/login", h.login)
	s.mux.Group(func(r chi.Router) {
		r.Use(RequireSession(h.Sessions))
		r.Post("/v1/auth/logout", h.logout)
	})

	// admin back office
	s.mux.Route("/v1/admin", func(r chi.Router) {
		r.Use(RequireSession(h.Sessions))
		r.Get("/status", h.adminStatus)
		r.Post("/refresh", h.adminRefresh)
		r.Get("/schema/{entity}", h.adminSchema)

		r.Get("/hotels", h.adminListHotels)
		r.Post("/hotels", h.adminAddHotel)
		r.Put("/hotels/{id}", h.adminUpdateHotel)
		r.Delete("/hotels/{id}", h.adminDeleteHotel)

		r.Get("/restaurants", h.adminListRestaurants)
		r.Post("/restaurants", h.adminAddRestaurant)
		r.Put("/restaurants/{id}", h.adminUpdateRestaurant)
		r.Delete("/restaurants/{id}", h.adminDeleteRestaurant)

		r.Get("/sightseeing", h.adminListSightseeing)
		r.Post("/sightseeing", h.adminAddSightseeing)
		r.Put("/sightseeing/{id}", h.adminUpdateSightseeing)
		r.Delete("/sightseeing/{id}", h.adminDeleteSightseeing)

		r.Get("/messages", h.adminListMessages)
		r.Delete("/messages/{id}", h.adminDeleteMessage)
		r.Post("/messages/{id}/read", h.adminMarkRead)
	})
}

type listPayload struct {
	Items any  `json:"items"`
	Stale bool `json:"stale,omitempty"`
}

// unavailable reports the retry-capable error state for a mirror that
// has no data to serve at all (first fetch failed, no snapshot).
func unavailable[T domain.Row](m *app.Mirror[T], items []T) bool {
	return !m.Loaded() && m.Err() != nil && len(items) == 0
}

func (h *Handlers) listHotels(w http.ResponseWriter, r *http.Request) {
	items := h.Catalog.Hotels.Items()
	if unavailable(h.Catalog.Hotels, items) {
		writeProblem(w, http.StatusServiceUnavailable, "Catalog Unavailable", "hotel catalog could not be loaded; retry shortly")
		return
	}
	items = app.FilterHotels(items, r.URL.Query().Get("q"))
	items = app.BucketHotels(items, r.URL.Query().Get("price"))
	items = app.SortHotels(items, r.URL.Query().Get("sort"))
	writeCachable(w, r, listPayload{Items: items, Stale: !h.Catalog.Hotels.Loaded()})
}

func (h *Handlers) listRestaurants(w http.ResponseWriter, r *http.Request) {
	items := h.Catalog.Restaurants.Items()
	if unavailable(h.Catalog.Restaurants, items) {
		writeProblem(w, http.StatusServiceUnavailable, "Catalog Unavailable", "restaurant catalog could not be loaded; retry shortly")
		return
	}
	items = app.FilterRestaurants(items, r.URL.Query().Get("q"))
	writeCachable(w, r, listPayload{Items: items, Stale: !h.Catalog.Restaurants.Loaded()})
}

func (h *Handlers) listSightseeing(w http.ResponseWriter, r *http.Request) {
	items := h.Catalog.Sightseeing.Items()
	if unavailable(h.Catalog.Sightseeing, items) {
		writeProblem(w, http.StatusServiceUnavailable, "Catalog Unavailable", "sightseeing catalog could not be loaded; retry shortly")
		return
	}
	items = app.FilterSightseeing(items, r.URL.Query().Get("q"))
	items = app.FilterSiteType(items, r.URL.Query().Get("type"))
	writeCachable(w, r, listPayload{Items: items, Stale: !h.Catalog.Sightseeing.Loaded()})
}

func (h *Handlers) submitContact(w http.ResponseWriter, r *http.Request) {
	var sub app.ContactSubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid JSON", err.Error())
		return
	}
	msg, err := h.Catalog.SubmitContact(r.Context(), sub)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, msg)
}
