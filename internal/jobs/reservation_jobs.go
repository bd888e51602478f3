package jobs

import (
	"context"
	"time"

	"alugacar-backend/internal/logger"
)

// Reservations whose pickup time has passed by more than this grace period
// without a pickup being processed are considered abandoned.
const pickupGraceHours = 6

// ExpireStaleReservations marks ACTIVE reservations as EXPIRED when the
// customer never showed up for pickup.
func (jr *JobRunner) ExpireStaleReservations() {
	jr.runWithRecovery("ExpireStaleReservations", func() {
		ctx := context.Background()

		query := `
			UPDATE reservations
			SET status = 'EXPIRED',
			    updated_on = NOW()
			WHERE status = 'ACTIVE'
			  AND pickup_at < $1
			RETURNING code, category, pickup_at
		`

		cutoff := time.Now().UTC().Add(-pickupGraceHours * time.Hour)
		rows, err := jr.db.QueryContext(ctx, query, cutoff)
		if err != nil {
			logger.Error("Failed to expire stale reservations", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var code, category string
			var pickupAt time.Time
			if err := rows.Scan(&code, &category, &pickupAt); err != nil {
				logger.Error("Failed to scan expired reservation", "error", err)
				continue
			}
			count++
			logger.Debug("Expired reservation",
				"code", code,
				"category", category,
				"pickup_at", pickupAt)
		}

		if err := rows.Err(); err != nil {
			logger.Error("Error iterating expired reservations", "error", err)
			return
		}

		logger.Info("Expired stale reservations", "count", count)
	})
}
