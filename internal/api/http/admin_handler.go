package http

import (
	"bytes"
	"fmt"
	"net/http"

	"genrent-backend/internal/domain"
	"genrent-backend/internal/logger"
	"genrent-backend/internal/service"
)

// AdminHandler exposes the admin listing and CSV export. Authentication
// sits in front of these routes at the deployment layer.
type AdminHandler struct {
	rentalSvc service.RentalService
}

func NewAdminHandler(rentalSvc service.RentalService) *AdminHandler {
	return &AdminHandler{rentalSvc: rentalSvc}
}

func (h *AdminHandler) ListRentals(w http.ResponseWriter, r *http.Request) {
	var status domain.RentalStatus
	if raw := r.URL.Query().Get("status"); raw != "" && raw != "all" {
		parsed, err := domain.ParseRentalStatus(raw)
		if err != nil {
			writeError(w, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err))
			return
		}
		status = parsed
	}

	rentals, err := h.rentalSvc.ListRentals(r.Context(), status)
	if err != nil {
		writeError(w, err)
		return
	}
	if rentals == nil {
		rentals = []domain.Rental{}
	}
	writeJSON(w, http.StatusOK, rentals)
}

func (h *AdminHandler) ExportRentals(w http.ResponseWriter, r *http.Request) {
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")
	if start == "" || end == "" {
		writeError(w, fmt.Errorf("%w: start and end query parameters are required", domain.ErrInvalidInput))
		return
	}

	var buf bytes.Buffer
	if err := h.rentalSvc.ExportCSV(r.Context(), start, end, &buf); err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=rentals_%s_%s.csv", start, end))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Error("Failed to stream CSV export", "error", err)
	}
}
