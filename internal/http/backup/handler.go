package backup

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"stablemate/internal/backup"
)

type Handler struct {
	svc *backup.Service
}

func NewHandler(svc *backup.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.export)
	r.Post("/", h.importSnapshot)
	r.Get("/log.csv", h.exportLogCSV)
	r.Get("/history.csv", h.exportHistoryCSV)
}

func (h *Handler) export(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="stablemate_backup.json"`)

	if err := h.svc.WriteJSON(r.Context(), w); err != nil {
		slog.Error("failed to write backup", "error", err)
	}
}

func (h *Handler) importSnapshot(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	snap, err := h.svc.Import(r.Context(), file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp := map[string]int{
		"owners":      len(snap.Owners),
		"horses":      len(snap.Horses),
		"logs":        len(snap.Logs),
		"paidHistory": len(snap.PaidHistory),
		"jobs":        len(snap.Jobs),
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) exportLogCSV(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="stablemate_log.csv"`)

	if err := h.svc.WriteJobLogCSV(r.Context(), w); err != nil {
		slog.Error("failed to write log csv", "error", err)
	}
}

func (h *Handler) exportHistoryCSV(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="stablemate_paid_history.csv"`)

	if err := h.svc.WritePaidHistoryCSV(r.Context(), w); err != nil {
		slog.Error("failed to write history csv", "error", err)
	}
}
