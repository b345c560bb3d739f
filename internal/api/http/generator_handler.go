package http

import (
	"net/http"
	"strconv"

	"genrent-backend/internal/domain"
	"genrent-backend/internal/service"

	"github.com/gorilla/mux"
)

// GeneratorHandler exposes the public availability check and the admin
// in-service toggle.
type GeneratorHandler struct {
	rentalSvc service.RentalService
}

func NewGeneratorHandler(rentalSvc service.RentalService) *GeneratorHandler {
	return &GeneratorHandler{rentalSvc: rentalSvc}
}

func (h *GeneratorHandler) Availability(w http.ResponseWriter, r *http.Request) {
	report, err := h.rentalSvc.Availability(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *GeneratorHandler) ToggleActive(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		writeError(w, domain.ErrGeneratorNotFound)
		return
	}
	generator, err := h.rentalSvc.ToggleGeneratorInService(r.Context(), int32(id))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":   "Generator status updated",
		"generator": generator,
	})
}
