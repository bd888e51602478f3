package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"alugacar-backend/internal/service"
)

// RouterDeps bundles the services the API serves.
type RouterDeps struct {
	Catalog      service.CatalogService
	Reservations service.ReservationService
	Pickups      service.PickupService
	Returns      service.ReturnService
	Maintenance  service.MaintenanceService
	Customers    service.CustomerService
	Pricing      *service.PricingEngine
	Email        service.EmailService
	ManagerEmail string
}

// NewRouter wires all API routes under /api/v1.
func NewRouter(deps RouterDeps) *mux.Router {
	catalog := NewCatalogHandler(deps.Catalog)
	reservations := NewReservationHandler(deps.Reservations, deps.Email)
	rentals := NewRentalHandler(deps.Pickups, deps.Returns)
	maintenance := NewMaintenanceHandler(deps.Maintenance, deps.Email, deps.ManagerEmail)
	customers := NewCustomerHandler(deps.Customers)
	pricing := NewPricingHandler(deps.Pricing, deps.Catalog)

	r := mux.NewRouter()
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/categories", catalog.ListCategories).Methods("GET")
	api.HandleFunc("/categories", catalog.SaveCategory).Methods("POST")
	api.HandleFunc("/categories/{code}", catalog.GetCategory).Methods("GET")
	api.HandleFunc("/categories/{code}/availability", pricing.Availability).Methods("GET")

	api.HandleFunc("/vehicles", catalog.AddVehicle).Methods("POST")
	api.HandleFunc("/vehicles/available", catalog.ListAvailableVehicles).Methods("GET")
	api.HandleFunc("/vehicles/{plate}", catalog.GetVehicle).Methods("GET")
	api.HandleFunc("/vehicles/{plate}/decommission", catalog.DecommissionVehicle).Methods("POST")
	api.HandleFunc("/vehicles/{plate}/maintenance", maintenance.Schedule).Methods("POST")

	api.HandleFunc("/customers", customers.Register).Methods("POST")
	api.HandleFunc("/customers/{taxID}", customers.Get).Methods("GET")
	api.HandleFunc("/customers/{taxID}/reservations", reservations.ListByCustomer).Methods("GET")

	api.HandleFunc("/reservations", reservations.Create).Methods("POST")
	api.HandleFunc("/reservations/{code}", reservations.Get).Methods("GET")
	api.HandleFunc("/reservations/{code}/reschedule", reservations.Reschedule).Methods("POST")
	api.HandleFunc("/reservations/{code}/cancel", reservations.Cancel).Methods("POST")

	api.HandleFunc("/rentals", rentals.Pickup).Methods("POST")
	api.HandleFunc("/rentals/active", rentals.ListActive).Methods("GET")
	api.HandleFunc("/rentals/{code}", rentals.Get).Methods("GET")
	api.HandleFunc("/rentals/{code}/return", rentals.Return).Methods("POST")

	return r
}
