package service

import (
	"context"

	"alugacar-backend/internal/domain"
	"alugacar-backend/internal/repository"
)

// Surge multiplier applied when a quote would take the last available unit,
// expressed as an integer ratio to keep cent math exact.
const (
	surgeNumerator   = 125
	surgeDenominator = 100
)

// PricingEngine computes occupancy, availability and quotes for a category
// over a period. Callers that act on a quote must hold the category lock
// across the quote and the write.
type PricingEngine struct {
	categoryRepo    repository.CategoryRepository
	reservationRepo repository.ReservationRepository
	rentalRepo      repository.RentalRepository
}

func NewPricingEngine(categoryRepo repository.CategoryRepository, reservationRepo repository.ReservationRepository, rentalRepo repository.RentalRepository) *PricingEngine {
	return &PricingEngine{
		categoryRepo:    categoryRepo,
		reservationRepo: reservationRepo,
		rentalRepo:      rentalRepo,
	}
}

// Occupancy counts active reservations and active rentals of the category
// whose periods overlap the given one.
func (e *PricingEngine) Occupancy(ctx context.Context, category domain.CategoryCode, period domain.Period) (int, error) {
	return e.occupancyExcluding(ctx, category, period, "")
}

func (e *PricingEngine) occupancyExcluding(ctx context.Context, category domain.CategoryCode, period domain.Period, excludeReservation string) (int, error) {
	reservations, err := e.reservationRepo.ListActiveOverlapping(ctx, category, period)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, r := range reservations {
		if excludeReservation != "" && r.Code == excludeReservation {
			continue
		}
		count++
	}

	rentals, err := e.rentalRepo.ListActiveOverlapping(ctx, category, period)
	if err != nil {
		return 0, err
	}
	for _, rt := range rentals {
		if excludeReservation != "" && rt.ReservationCode == excludeReservation {
			continue
		}
		count++
	}

	return count, nil
}

// Availability returns how many units of the category remain free over the
// period. Never negative.
func (e *PricingEngine) Availability(ctx context.Context, category *domain.Category, period domain.Period) (int, error) {
	occupied, err := e.Occupancy(ctx, category.Code, period)
	if err != nil {
		return 0, err
	}
	remaining := category.Capacity - occupied
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

// Quote prices a new booking for the period. Taking the last available unit
// costs 25% extra; no units left yields ErrNoAvailability.
func (e *PricingEngine) Quote(ctx context.Context, category *domain.Category, period domain.Period) (int64, error) {
	occupied, err := e.Occupancy(ctx, category.Code, period)
	if err != nil {
		return 0, err
	}

	remaining := category.Capacity - occupied
	if remaining <= 0 {
		return 0, domain.ErrNoAvailability
	}

	value := category.DailyRateCents * int64(period.DurationDays())
	if remaining == 1 {
		value = value * surgeNumerator / surgeDenominator
	}
	return value, nil
}

// EnsureCapacity verifies that moving the given reservation to a new period
// keeps the category within capacity, ignoring the reservation's own slot.
func (e *PricingEngine) EnsureCapacity(ctx context.Context, category *domain.Category, period domain.Period, excludeReservation string) error {
	occupied, err := e.occupancyExcluding(ctx, category.Code, period, excludeReservation)
	if err != nil {
		return err
	}
	if occupied+1 > category.Capacity {
		return domain.ErrNoAvailability
	}
	return nil
}
