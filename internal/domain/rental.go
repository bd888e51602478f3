package domain

const FuelLevelFull = "FULL"

// Fixed surcharges collected at return. These are flat penalty amounts, not
// a schedule: refueling below full costs a flat R$50 service fee and any
// reported damage a flat R$100 handling fee.
const (
	FuelSurchargeCents   int64 = 5_000
	DamageSurchargeCents int64 = 10_000
)

type RentalStatus string

const (
	RentalStatusActive   RentalStatus = "ACTIVE"
	RentalStatusFinished RentalStatus = "FINISHED"
)

// InspectionChecklist is captured once at pickup and once at return, and is
// immutable after being recorded.
type InspectionChecklist struct {
	OdometerKM int    `json:"odometer_km"`
	FuelLevel  string `json:"fuel_level"`
	HasDamage  bool   `json:"has_damage"`
}

// Billing is the computed outcome of a return. It is derived output, never
// stored as mutable state.
type Billing struct {
	TotalCents        int64 `json:"total_cents"`
	DailyChargesCents int64 `json:"daily_charges_cents"`
	LateChargeCents   int64 `json:"late_charge_cents"`
	LateFeeCents      int64 `json:"late_fee_cents"`
	ExtraFeesCents    int64 `json:"extra_fees_cents"`
}

// Rental is an active contract created at pickup and finalized exactly once
// at return. DailyRateCents is the vehicle's rate at pickup time, which may
// differ from the rate locked on the reservation.
type Rental struct {
	Code             string               `json:"code"`
	ReservationCode  string               `json:"reservation_code"`
	Plate            string               `json:"plate"`
	PlannedDays      int                  `json:"planned_days"`
	DailyRateCents   int64                `json:"daily_rate_cents"`
	LateFeeStrategy  string               `json:"late_fee_strategy"`
	Status           RentalStatus         `json:"status"`
	PickupInspection InspectionChecklist  `json:"pickup_inspection"`
	ReturnInspection *InspectionChecklist `json:"return_inspection,omitempty"`
}

// RecordReturnInspection attaches the return checklist. Damage is only
// assessed here; the pickup checklist always carries HasDamage=false.
func (r *Rental) RecordReturnInspection(c InspectionChecklist) error {
	if r.Status == RentalStatusFinished {
		return ErrRentalAlreadyFinished
	}
	if r.Status != RentalStatusActive {
		return ErrRentalNotActive
	}
	r.ReturnInspection = &c
	return nil
}

// Finalize closes the rental and computes the bill. Early returns still pay
// the full planned term; there is no pro-rated refund. The transition to
// FINISHED is irreversible and a second finalization fails.
func (r *Rental) Finalize(daysUsed int, lateFeePercent float64, extraFeesCents int64) (Billing, error) {
	if r.Status == RentalStatusFinished {
		return Billing{}, ErrRentalAlreadyFinished
	}
	if r.Status != RentalStatusActive {
		return Billing{}, ErrRentalNotActive
	}

	if daysUsed < r.PlannedDays {
		daysUsed = r.PlannedDays
	}
	lateDays := daysUsed - r.PlannedDays

	dailyCharges := r.DailyRateCents * int64(daysUsed)
	var lateCharge int64
	if lateDays > 0 {
		lateCharge = r.DailyRateCents * int64(lateDays)
	}
	lateFee := LateFeeStrategyFor(r.LateFeeStrategy).Compute(lateCharge, lateFeePercent)

	r.Status = RentalStatusFinished

	return Billing{
		TotalCents:        dailyCharges + lateCharge + lateFee + extraFeesCents,
		DailyChargesCents: dailyCharges,
		LateChargeCents:   lateCharge,
		LateFeeCents:      lateFee,
		ExtraFeesCents:    extraFeesCents,
	}, nil
}
