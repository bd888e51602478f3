package domain

import "time"

// MaintenanceEvent is emitted when a vehicle is taken out of the available
// pool for planned work. It is a notification trigger, not stored state:
// the caller publishes it after the surrounding transaction commits.
type MaintenanceEvent struct {
	Plate       string       `json:"plate"`
	Category    CategoryCode `json:"category"`
	Reason      string       `json:"reason"`
	StartedAt   time.Time    `json:"started_at"`
	ExpectedEnd time.Time    `json:"expected_end"`
}
