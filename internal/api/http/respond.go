package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"alugacar-backend/internal/domain"
	"alugacar-backend/internal/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// writeError maps domain errors onto HTTP status codes. Unrecognized errors
// become 500 without leaking internals.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrVehicleNotFound),
		errors.Is(err, domain.ErrReservationNotFound),
		errors.Is(err, domain.ErrRentalNotFound),
		errors.Is(err, domain.ErrCustomerNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, domain.ErrInvalidRange),
		errors.Is(err, domain.ErrInvalidCustomer),
		errors.Is(err, domain.ErrInvalidVehicle),
		errors.Is(err, domain.ErrInvalidMaintenance):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, domain.ErrInvalidCredentials):
		status = http.StatusForbidden
		message = err.Error()
	case errors.Is(err, domain.ErrNoAvailability),
		errors.Is(err, domain.ErrCancellationWindowViolation),
		errors.Is(err, domain.ErrVehicleSold),
		errors.Is(err, domain.ErrVehicleUnderMaintenance),
		errors.Is(err, domain.ErrVehicleUnavailable),
		errors.Is(err, domain.ErrCategoryMismatch),
		errors.Is(err, domain.ErrRentalAlreadyFinished),
		errors.Is(err, domain.ErrRentalNotActive),
		errors.Is(err, domain.ErrReservationNotProcessable),
		errors.Is(err, domain.ErrInvalidTransition):
		status = http.StatusConflict
		message = err.Error()
	default:
		logger.Error("Request failed", "error", err)
	}

	writeJSON(w, status, errorResponse{Error: message})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return false
	}
	return true
}
