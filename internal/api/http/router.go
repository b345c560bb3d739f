// Package http is the request/response surface over the lifecycle
// engine. Routes mirror the public booking site and the admin panel.
package http

import (
	"net/http"

	"genrent-backend/internal/service"

	"github.com/gorilla/mux"
)

// NewRouter wires all API routes onto a gorilla/mux router.
func NewRouter(rentalSvc service.RentalService) *mux.Router {
	rentalHandler := NewRentalHandler(rentalSvc)
	generatorHandler := NewGeneratorHandler(rentalSvc)
	adminHandler := NewAdminHandler(rentalSvc)

	router := mux.NewRouter()
	router.Use(RequestLogging)

	// Public booking API
	router.HandleFunc("/api/rentals", rentalHandler.CreateRental).Methods("POST")
	router.HandleFunc("/api/generators/availability", generatorHandler.Availability).Methods("GET")
	router.HandleFunc("/api/rentals/booked-dates", rentalHandler.BookedDates).Methods("GET")

	// Admin API
	router.HandleFunc("/api/admin/rentals", adminHandler.ListRentals).Methods("GET")
	router.HandleFunc("/api/admin/rentals/export", adminHandler.ExportRentals).Methods("GET")
	router.HandleFunc("/api/rentals/{id}/approve", rentalHandler.Approve).Methods("POST")
	router.HandleFunc("/api/rentals/{id}/invoice", rentalHandler.Invoice).Methods("POST")
	router.HandleFunc("/api/rentals/{id}/paid", rentalHandler.MarkPaid).Methods("POST")
	router.HandleFunc("/api/rentals/{id}", rentalHandler.Delete).Methods("DELETE")
	router.HandleFunc("/api/generators/{id}/toggle-active", generatorHandler.ToggleActive).Methods("POST")

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	return router
}
