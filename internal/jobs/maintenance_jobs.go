package jobs

import (
	"context"
	"fmt"
	"strings"
	"time"

	"alugacar-backend/internal/logger"
)

// SendMaintenanceDueReport emails the fleet manager the vehicles whose
// scheduled maintenance window has already elapsed.
func (jr *JobRunner) SendMaintenanceDueReport() {
	jr.runWithRecovery("SendMaintenanceDueReport", func() {
		ctx := context.Background()

		vehicles, err := jr.store.ListMaintenanceDue(ctx, time.Now().UTC())
		if err != nil {
			logger.Error("Failed to list maintenance-due vehicles", "error", err)
			return
		}
		if len(vehicles) == 0 {
			logger.Info("No vehicles past their maintenance window")
			return
		}

		var b strings.Builder
		b.WriteString("The following vehicles are past their expected maintenance end:\n\n")
		for _, v := range vehicles {
			due := "unknown"
			if v.ScheduledMaintenanceDate != nil {
				due = v.ScheduledMaintenanceDate.Format("2006-01-02")
			}
			b.WriteString(fmt.Sprintf("- %s (%s, %s) expected back %s: %s\n",
				v.Plate, v.Model, v.Category, due, v.MaintenanceNote))
		}

		to := jr.config.Email.ManagerEmail
		if to == "" {
			logger.Warn("Manager email not configured, skipping maintenance report")
			return
		}
		if err := jr.email.SendMaintenanceDueReport(ctx, to, b.String()); err != nil {
			logger.Error("Failed to send maintenance report", "error", err)
			return
		}

		logger.Info("Sent maintenance-due report", "vehicles", len(vehicles), "to", to)
	})
}
