package http

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"alugacar-backend/internal/logger"
	"alugacar-backend/internal/service"
)

// ReservationHandler serves the booking lifecycle endpoints
type ReservationHandler struct {
	reservations service.ReservationService
	email        service.EmailService
}

func NewReservationHandler(reservations service.ReservationService, email service.EmailService) *ReservationHandler {
	return &ReservationHandler{reservations: reservations, email: email}
}

func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var cmd service.CreateReservationCommand
	if !decodeBody(w, r, &cmd) {
		return
	}
	reservation, err := h.reservations.Create(r.Context(), cmd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, reservation)
}

type rescheduleRequest struct {
	PickupAt time.Time `json:"pickup_at"`
	ReturnAt time.Time `json:"return_at"`
}

func (h *ReservationHandler) Reschedule(w http.ResponseWriter, r *http.Request) {
	var req rescheduleRequest
	if !decodeBody(w, r, &req) {
		return
	}
	reservation, err := h.reservations.Reschedule(r.Context(), mux.Vars(r)["code"], req.PickupAt, req.ReturnAt)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reservation)
}

type cancelRequest struct {
	TaxID string `json:"tax_id"`
}

type cancelResponse struct {
	Code     string `json:"code"`
	FeeCents int64  `json:"fee_cents"`
}

func (h *ReservationHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	var req cancelRequest
	if !decodeBody(w, r, &req) {
		return
	}
	code := mux.Vars(r)["code"]

	reservation, err := h.reservations.GetByCode(r.Context(), code)
	if err != nil {
		writeError(w, err)
		return
	}

	fee, err := h.reservations.Cancel(r.Context(), code, req.TaxID, time.Now().UTC())
	if err != nil {
		writeError(w, err)
		return
	}

	if h.email != nil && reservation.Customer.Email != "" {
		if err := h.email.SendCancellationConfirmation(r.Context(), reservation.Customer.Email, reservation.Customer.Name, code, fee); err != nil {
			logger.Warn("Failed to send cancellation confirmation", "code", code, "error", err)
		}
	}

	writeJSON(w, http.StatusOK, cancelResponse{Code: code, FeeCents: fee})
}

func (h *ReservationHandler) Get(w http.ResponseWriter, r *http.Request) {
	reservation, err := h.reservations.GetByCode(r.Context(), mux.Vars(r)["code"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reservation)
}

func (h *ReservationHandler) ListByCustomer(w http.ResponseWriter, r *http.Request) {
	reservations, err := h.reservations.ListByCustomer(r.Context(), mux.Vars(r)["taxID"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reservations)
}
