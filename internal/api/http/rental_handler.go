package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"genrent-backend/internal/domain"
	"genrent-backend/internal/service"

	"github.com/gorilla/mux"
)

// RentalHandler exposes the booking intake and lifecycle transitions.
type RentalHandler struct {
	rentalSvc service.RentalService
}

func NewRentalHandler(rentalSvc service.RentalService) *RentalHandler {
	return &RentalHandler{rentalSvc: rentalSvc}
}

type createRentalRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Delivery  string `json:"delivery"`
	Address   string `json:"address"`
}

func (h *RentalHandler) CreateRental(w http.ResponseWriter, r *http.Request) {
	var req createRentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: malformed JSON body", domain.ErrInvalidInput))
		return
	}

	rental, err := h.rentalSvc.CreateRental(r.Context(), service.CreateRentalInput{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		DeliveryType: domain.DeliveryType(req.Delivery),
		Address:      req.Address,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"id":      rental.ID,
		"message": "Rental request created successfully",
	})
}

func (h *RentalHandler) BookedDates(w http.ResponseWriter, r *http.Request) {
	periods, activeGenerators, err := h.rentalSvc.BookedPeriods(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"bookedPeriods":    periods,
		"activeGenerators": activeGenerators,
	})
}

func (h *RentalHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := rentalID(r)
	if err != nil {
		writeError(w, domain.ErrRentalNotFound)
		return
	}
	rental, err := h.rentalSvc.Approve(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":     "Rental approved and generator assigned",
		"generatorId": rental.GeneratorID,
	})
}

func (h *RentalHandler) Invoice(w http.ResponseWriter, r *http.Request) {
	id, err := rentalID(r)
	if err != nil {
		writeError(w, domain.ErrRentalNotFound)
		return
	}
	if _, err := h.rentalSvc.Invoice(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Invoice sent successfully"})
}

func (h *RentalHandler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	id, err := rentalID(r)
	if err != nil {
		writeError(w, domain.ErrRentalNotFound)
		return
	}
	if _, err := h.rentalSvc.MarkPaid(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Payment recorded and generator released"})
}

func (h *RentalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := rentalID(r)
	if err != nil {
		writeError(w, domain.ErrRentalNotFound)
		return
	}
	if err := h.rentalSvc.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Rental deleted successfully"})
}

func rentalID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}
