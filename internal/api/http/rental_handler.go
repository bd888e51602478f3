package http

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"alugacar-backend/internal/service"
)

// RentalHandler serves pickup, return and rental lookup endpoints
type RentalHandler struct {
	pickups service.PickupService
	returns service.ReturnService
}

func NewRentalHandler(pickups service.PickupService, returns service.ReturnService) *RentalHandler {
	return &RentalHandler{pickups: pickups, returns: returns}
}

func (h *RentalHandler) Pickup(w http.ResponseWriter, r *http.Request) {
	var cmd service.PickupCommand
	if !decodeBody(w, r, &cmd) {
		return
	}
	contract, err := h.pickups.ProcessPickup(r.Context(), cmd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, contract)
}

func (h *RentalHandler) Return(w http.ResponseWriter, r *http.Request) {
	var cmd service.ReturnCommand
	if !decodeBody(w, r, &cmd) {
		return
	}
	cmd.RentalCode = mux.Vars(r)["code"]
	if cmd.ReturnedAt.IsZero() {
		cmd.ReturnedAt = time.Now().UTC()
	}
	billing, err := h.returns.ProcessReturn(r.Context(), cmd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, billing)
}

func (h *RentalHandler) Get(w http.ResponseWriter, r *http.Request) {
	rental, err := h.returns.GetRental(r.Context(), mux.Vars(r)["code"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	rentals, err := h.returns.ListActiveRentals(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rentals)
}
