package domain

type ReservationStatus string

const (
	ReservationStatusActive    ReservationStatus = "ACTIVE"
	ReservationStatusCancelled ReservationStatus = "CANCELLED"
	ReservationStatusCompleted ReservationStatus = "COMPLETED"
	ReservationStatusExpired   ReservationStatus = "EXPIRED"
)

func (s ReservationStatus) Active() bool {
	return s == ReservationStatusActive
}

// Reservation locks a category and a price for a period. CANCELLED,
// COMPLETED and EXPIRED are terminal.
type Reservation struct {
	Code                string            `json:"code"`
	Category            CategoryCode      `json:"category"`
	PickupCity          string            `json:"pickup_city"`
	Period              Period            `json:"period"`
	EstimatedValueCents int64             `json:"estimated_value_cents"`
	Status              ReservationStatus `json:"status"`
	Customer            Customer          `json:"customer"`
}

// Complete marks the reservation converted into a rental at pickup.
func (r *Reservation) Complete() error {
	if !r.Status.Active() {
		return ErrReservationNotProcessable
	}
	r.Status = ReservationStatusCompleted
	return nil
}

func (r *Reservation) Cancel() error {
	if !r.Status.Active() {
		return ErrReservationNotProcessable
	}
	r.Status = ReservationStatusCancelled
	return nil
}

// Expire marks a reservation whose pickup time passed without a pickup.
func (r *Reservation) Expire() error {
	if !r.Status.Active() {
		return ErrReservationNotProcessable
	}
	r.Status = ReservationStatusExpired
	return nil
}

// Reschedule swaps in a new period and the value recomputed for it.
func (r *Reservation) Reschedule(period Period, valueCents int64) error {
	if !r.Status.Active() {
		return ErrReservationNotProcessable
	}
	r.Period = period
	r.EstimatedValueCents = valueCents
	return nil
}
