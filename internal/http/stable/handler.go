package stable

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"stablemate/internal/stable"
)

type Handler struct {
	svc *stable.Service
}

func NewHandler(svc *stable.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/owners", h.listOwners)
	r.Post("/owners", h.createOwner)
	r.Patch("/owners/{id}", h.renameOwner)
	r.Delete("/owners/{id}", h.deleteOwner)

	r.Get("/horses", h.listHorses)
	r.Post("/horses", h.createHorse)
	r.Delete("/horses/{id}", h.deleteHorse)
}

type ownerRequest struct {
	Name string `json:"name"`
}

func (h *Handler) createOwner(w http.ResponseWriter, r *http.Request) {
	var req ownerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	o, err := h.svc.AddOwner(r.Context(), req.Name)
	if err != nil {
		if errors.Is(err, stable.ErrEmptyName) {
			http.Error(w, "owner name must not be empty", http.StatusBadRequest)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusCreated, o)
}

func (h *Handler) listOwners(w http.ResponseWriter, r *http.Request) {
	owners, err := h.svc.ListOwners(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, owners)
}

func (h *Handler) renameOwner(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req ownerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.RenameOwner(r.Context(), id, req.Name); err != nil {
		switch {
		case errors.Is(err, stable.ErrEmptyName):
			http.Error(w, "owner name must not be empty", http.StatusBadRequest)
		case errors.Is(err, stable.ErrNotFound):
			http.Error(w, "owner not found", http.StatusNotFound)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteOwner(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.RemoveOwner(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type horseRequest struct {
	Name    string    `json:"name"`
	OwnerID uuid.UUID `json:"owner_id"`
}

func (h *Handler) createHorse(w http.ResponseWriter, r *http.Request) {
	var req horseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	horse, err := h.svc.AddHorse(r.Context(), req.OwnerID, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, stable.ErrEmptyName):
			http.Error(w, "horse name must not be empty", http.StatusBadRequest)
		case errors.Is(err, stable.ErrNotFound):
			http.Error(w, "owner not found", http.StatusNotFound)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}

		return
	}

	writeJSON(w, http.StatusCreated, horse)
}

func (h *Handler) listHorses(w http.ResponseWriter, r *http.Request) {
	horses, err := h.svc.ListHorses(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, horses)
}

func (h *Handler) deleteHorse(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.RemoveHorse(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
