package httpserver

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"cairo_tours/internal/app"
	"cairo_tours/internal/domain"
)

func (h *Handlers) login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid JSON", err.Error())
		return
	}
	sess, err := h.Sessions.SignIn(r.Context(), creds.Email, creds.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	log.Info().Str("email", sess.User.Email).Msg("admin signed in")
	writeJSON(w, http.StatusOK, sess)
}

func (h *Handlers) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.SignOut(r.Context(), bearerToken(r)); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type mirrorStatus struct {
	Count  int    `json:"count"`
	Loaded bool   `json:"loaded"`
	Error  string `json:"error,omitempty"`
}

func status[T domain.Row](m *app.Mirror[T]) mirrorStatus {
	st := mirrorStatus{Count: len(m.Items()), Loaded: m.Loaded()}
	if err := m.Err(); err != nil {
		st.Error = err.Error()
	}
	return st
}

func (h *Handlers) adminStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]mirrorStatus{
		"hotels":      status(h.Catalog.Hotels),
		"restaurants": status(h.Catalog.Restaurants),
		"sightseeing": status(h.Catalog.Sightseeing),
		"messages":    status(h.Catalog.Messages),
	})
}

func (h *Handlers) adminRefresh(w http.ResponseWriter, r *http.Request) {
	if err := h.Catalog.RefreshAll(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	h.adminStatus(w, r)
}

func (h *Handlers) adminSchema(w http.ResponseWriter, r *http.Request) {
	fields, ok := app.FormSchema(chi.URLParam(r, "entity"))
	if !ok {
		writeProblem(w, http.StatusNotFound, "Not Found", "no such entity")
		return
	}
	writeJSON(w, http.StatusOK, fields)
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a positive number")
		return 0, false
	}
	return id, true
}

// ---- hotels ----

func (h *Handlers) adminListHotels(w http.ResponseWriter, r *http.Request) {
	items := app.FilterHotels(h.Catalog.Hotels.Items(), r.URL.Query().Get("q"))
	writeJSON(w, http.StatusOK, listPayload{Items: items})
}

func (h *Handlers) adminAddHotel(w http.ResponseWriter, r *http.Request) {
	var f app.HotelForm
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid JSON", err.Error())
		return
	}
	if err := f.Validate(); err != nil {
		writeError(w, err)
		return
	}
	created, err := h.Catalog.Hotels.Add(r.Context(), f.Row())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) adminUpdateHotel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var f app.HotelForm
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid JSON", err.Error())
		return
	}
	if err := f.Validate(); err != nil {
		writeError(w, err)
		return
	}
	updated, err := h.Catalog.Hotels.Update(r.Context(), id, f.Patch())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handlers) adminDeleteHotel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.Catalog.Hotels.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---- restaurants ----

func (h *Handlers) adminListRestaurants(w http.ResponseWriter, r *http.Request) {
	items := app.FilterRestaurants(h.Catalog.Restaurants.Items(), r.URL.Query().Get("q"))
	writeJSON(w, http.StatusOK, listPayload{Items: items})
}

func (h *Handlers) adminAddRestaurant(w http.ResponseWriter, r *http.Request) {
	var f app.RestaurantForm
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid JSON", err.Error())
		return
	}
	if err := f.Validate(); err != nil {
		writeError(w, err)
		return
	}
	created, err := h.Catalog.Restaurants.Add(r.Context(), f.Row())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) adminUpdateRestaurant(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var f app.RestaurantForm
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid JSON", err.Error())
		return
	}
	if err := f.Validate(); err != nil {
		writeError(w, err)
		return
	}
	updated, err := h.Catalog.Restaurants.Update(r.Context(), id, f.Patch())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handlers) adminDeleteRestaurant(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.Catalog.Restaurants.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---- sightseeing ----

func (h *Handlers) adminListSightseeing(w http.ResponseWriter, r *http.Request) {
	items := app.FilterSightseeing(h.Catalog.Sightseeing.Items(), r.URL.Query().Get("q"))
	writeJSON(w, http.StatusOK, listPayload{Items: items})
}

func (h *Handlers) adminAddSightseeing(w http.ResponseWriter, r *http.Request) {
	var f app.SightseeingForm
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid JSON", err.Error())
		return
	}
	if err := f.Validate(); err != nil {
		writeError(w, err)
		return
	}
	created, err := h.Catalog.Sightseeing.Add(r.Context(), f.Row())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) adminUpdateSightseeing(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var f app.SightseeingForm
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid JSON", err.Error())
		return
	}
	if err := f.Validate(); err != nil {
		writeError(w, err)
		return
	}
	updated, err := h.Catalog.Sightseeing.Update(r.Context(), id, f.Patch())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handlers) adminDeleteSightseeing(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.Catalog.Sightseeing.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---- messages ----

func (h *Handlers) adminListMessages(w http.ResponseWriter, r *http.Request) {
	items := app.FilterMessages(h.Catalog.Messages.Items(), r.URL.Query().Get("q"))
	writeJSON(w, http.StatusOK, listPayload{Items: items})
}

func (h *Handlers) adminDeleteMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.Catalog.Messages.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) adminMarkRead(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var body struct {
		IsRead bool `json:"is_read"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid JSON", err.Error())
		return
	}
	updated, err := h.Catalog.MarkRead(r.Context(), id, body.IsRead)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}
