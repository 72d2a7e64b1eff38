package billing

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"stablemate/internal/billing"
)

type Handler struct {
	svc *billing.Service
}

func NewHandler(svc *billing.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/totals", h.totals)
	r.Get("/invoices", h.listInvoices)
	r.Post("/invoices", h.createInvoices)
	r.Post("/invoices/{id}/paid", h.markInvoicePaid)
	r.Post("/owners/{id}/paid", h.markOwnerPaid)
	r.Get("/history", h.history)
}

func (h *Handler) totals(w http.ResponseWriter, r *http.Request) {
	totals, err := h.svc.Totals(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, totals)
}

// createInvoicesRequest takes either a single date or an inclusive range.
type createInvoicesRequest struct {
	Date string `json:"date,omitempty"`
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

func (h *Handler) createInvoices(w http.ResponseWriter, r *http.Request) {
	var req createInvoicesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var from, to time.Time

	switch {
	case req.Date != "":
		d, err := time.Parse(time.DateOnly, req.Date)
		if err != nil {
			http.Error(w, "invalid date", http.StatusBadRequest)
			return
		}

		from, to = d, d
	case req.From != "" && req.To != "":
		var err error

		from, err = time.Parse(time.DateOnly, req.From)
		if err != nil {
			http.Error(w, "invalid from date", http.StatusBadRequest)
			return
		}

		to, err = time.Parse(time.DateOnly, req.To)
		if err != nil {
			http.Error(w, "invalid to date", http.StatusBadRequest)
			return
		}
	default:
		http.Error(w, "date or from/to is required", http.StatusBadRequest)
		return
	}

	invoices, err := h.svc.MakeInvoices(r.Context(), from, to)
	if err != nil {
		if errors.Is(err, billing.ErrNoJobs) {
			http.Error(w, "no unbilled jobs in range", http.StatusConflict)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusCreated, invoices)
}

func (h *Handler) listInvoices(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.svc.ListInvoices(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, invoices)
}

func (h *Handler) markInvoicePaid(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.MarkInvoicePaid(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) markOwnerPaid(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	rec, err := h.svc.MarkOwnerPaid(r.Context(), id)
	if err != nil {
		if errors.Is(err, billing.ErrNothingToPay) {
			http.Error(w, "owner has no unpaid jobs", http.StatusConflict)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusCreated, rec)
}

func (h *Handler) history(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.PaidHistory(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, records)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
