package joblog

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"stablemate/internal/joblog"
)

type Handler struct {
	svc *joblog.Service
}

func NewHandler(svc *joblog.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/types", h.listTypes)
	r.Post("/types", h.createType)
	r.Delete("/types/{key}", h.deleteType)

	r.Get("/", h.list)
	r.Post("/", h.log)
	r.Post("/undo", h.undo)
	r.Delete("/", h.clearAll)
	r.Delete("/day/{date}", h.clearDay)
	r.Delete("/{id}", h.remove)
	r.Patch("/{id}/completed", h.setCompleted)
}

type logRequest struct {
	HorseID     uuid.UUID `json:"horse_id"`
	JobKey      string    `json:"job_key"`
	Date        string    `json:"date"`
	Description string    `json:"description,omitempty"`
	Price       *int64    `json:"price,omitempty"`
	Until       string    `json:"until,omitempty"`
}

func (h *Handler) log(w http.ResponseWriter, r *http.Request) {
	var req logRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}

	entry, err := h.svc.LogJob(r.Context(), req.HorseID, req.JobKey, date, joblog.Details{
		Description: req.Description,
		Price:       req.Price,
		Until:       req.Until,
	})
	if err != nil {
		switch {
		case errors.Is(err, joblog.ErrCanceled):
			// Declined details: nothing happened, and that is fine.
			w.WriteHeader(http.StatusNoContent)
		case errors.Is(err, joblog.ErrNoHorse), errors.Is(err, joblog.ErrUnknownJob):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}

		return
	}

	writeJSON(w, http.StatusCreated, entry)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := joblog.ListFilter{}

	if s := r.URL.Query().Get("date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			d := joblog.DateOnly(t)
			filter.Day = &d
		}
	}

	if s := r.URL.Query().Get("from"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			d := joblog.DateOnly(t)
			filter.From = &d
		}
	}

	if s := r.URL.Query().Get("to"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			d := joblog.DateOnly(t)
			filter.To = &d
		}
	}

	if r.URL.Query().Get("unpaid") == "true" {
		filter.UnpaidOnly = true
	}

	entries, err := h.svc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

func (h *Handler) undo(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.UndoLast(r.Context()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Remove(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) clearDay(w http.ResponseWriter, r *http.Request) {
	date, err := time.Parse(time.DateOnly, chi.URLParam(r, "date"))
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}

	if err := h.svc.ClearDay(r.Context(), date); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) clearAll(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ClearAll(r.Context()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type completedRequest struct {
	Completed bool `json:"completed"`
}

func (h *Handler) setCompleted(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req completedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.SetCompleted(r.Context(), id, req.Completed); err != nil {
		if errors.Is(err, joblog.ErrNotFound) {
			http.Error(w, "entry not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.svc.Catalog(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, types)
}

type createTypeRequest struct {
	Label string `json:"label"`
	Price int64  `json:"price"`
}

func (h *Handler) createType(w http.ResponseWriter, r *http.Request) {
	var req createTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	jt, err := h.svc.AddJobType(r.Context(), req.Label, req.Price)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusCreated, jt)
}

func (h *Handler) deleteType(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.RemoveJobType(r.Context(), chi.URLParam(r, "key")); err != nil {
		if errors.Is(err, joblog.ErrReservedJob) {
			http.Error(w, "job type is reserved", http.StatusBadRequest)
			return
		}

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
