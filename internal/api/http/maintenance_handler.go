package http

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"alugacar-backend/internal/logger"
	"alugacar-backend/internal/service"
)

// MaintenanceHandler schedules vehicle maintenance and notifies the fleet
// manager once the state change is persisted.
type MaintenanceHandler struct {
	maintenance  service.MaintenanceService
	email        service.EmailService
	managerEmail string
}

func NewMaintenanceHandler(maintenance service.MaintenanceService, email service.EmailService, managerEmail string) *MaintenanceHandler {
	return &MaintenanceHandler{
		maintenance:  maintenance,
		email:        email,
		managerEmail: managerEmail,
	}
}

type scheduleMaintenanceRequest struct {
	ExpectedEnd time.Time `json:"expected_end"`
	Reason      string    `json:"reason"`
}

func (h *MaintenanceHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	var req scheduleMaintenanceRequest
	if !decodeBody(w, r, &req) {
		return
	}

	event, err := h.maintenance.Schedule(r.Context(), mux.Vars(r)["plate"], req.ExpectedEnd, req.Reason)
	if err != nil {
		writeError(w, err)
		return
	}

	if h.email != nil && h.managerEmail != "" {
		if err := h.email.SendMaintenanceScheduledNotification(r.Context(), h.managerEmail, *event); err != nil {
			logger.Warn("Failed to notify manager of scheduled maintenance",
				"plate", event.Plate, "error", err)
		}
	}

	writeJSON(w, http.StatusOK, event)
}
