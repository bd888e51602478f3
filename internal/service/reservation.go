package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"alugacar-backend/internal/domain"
	"alugacar-backend/internal/logger"
	"alugacar-backend/internal/repository"
)

// Reservations can be cancelled for free up to this many hours before pickup.
const cancellationWindowHours = 12

type reservationService struct {
	reservationRepo repository.ReservationRepository
	categoryRepo    repository.CategoryRepository
	customerRepo    repository.CustomerRepository
	pricing         *PricingEngine
	locks           *CategoryLocks
}

func NewReservationService(
	reservationRepo repository.ReservationRepository,
	categoryRepo repository.CategoryRepository,
	customerRepo repository.CustomerRepository,
	pricing *PricingEngine,
	locks *CategoryLocks,
) ReservationService {
	return &reservationService{
		reservationRepo: reservationRepo,
		categoryRepo:    categoryRepo,
		customerRepo:    customerRepo,
		pricing:         pricing,
		locks:           locks,
	}
}

func (s *reservationService) Create(ctx context.Context, cmd CreateReservationCommand) (*domain.Reservation, error) {
	period, err := domain.NewPeriod(cmd.PickupAt, cmd.ReturnAt)
	if err != nil {
		return nil, err
	}
	if cmd.PickupCity == "" {
		return nil, fmt.Errorf("%w: pickup city is required", domain.ErrInvalidRange)
	}

	customer, err := domain.NewCustomer(cmd.Customer.Name, cmd.Customer.TaxID, cmd.Customer.DriverLicenseID, cmd.Customer.Email)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(cmd.Category)
	defer unlock()

	category, err := s.categoryRepo.GetByCode(ctx, cmd.Category)
	if err != nil {
		return nil, err
	}

	value, err := s.pricing.Quote(ctx, category, period)
	if err != nil {
		return nil, err
	}

	if _, err := s.customerRepo.GetByTaxID(ctx, customer.TaxID); err != nil {
		if !errors.Is(err, domain.ErrCustomerNotFound) {
			return nil, err
		}
		if err := s.customerRepo.Save(ctx, &customer); err != nil {
			return nil, fmt.Errorf("failed to register customer: %w", err)
		}
	}

	reservation := &domain.Reservation{
		Code:                uuid.NewString(),
		Category:            category.Code,
		PickupCity:          cmd.PickupCity,
		Period:              period,
		EstimatedValueCents: value,
		Status:              domain.ReservationStatusActive,
		Customer:            customer,
	}

	if err := s.reservationRepo.Create(ctx, reservation); err != nil {
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}

	logger.Info("reservation created",
		"code", reservation.Code,
		"category", reservation.Category,
		"value_cents", reservation.EstimatedValueCents)
	return reservation, nil
}

func (s *reservationService) Reschedule(ctx context.Context, code string, pickupAt, returnAt time.Time) (*domain.Reservation, error) {
	period, err := domain.NewPeriod(pickupAt, returnAt)
	if err != nil {
		return nil, err
	}

	reservation, err := s.reservationRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(reservation.Category)
	defer unlock()

	category, err := s.categoryRepo.GetByCode(ctx, reservation.Category)
	if err != nil {
		return nil, err
	}

	if err := s.pricing.EnsureCapacity(ctx, category, period, reservation.Code); err != nil {
		return nil, err
	}

	value := category.DailyRateCents * int64(period.DurationDays())
	if err := reservation.Reschedule(period, value); err != nil {
		return nil, err
	}

	if err := s.reservationRepo.Update(ctx, reservation); err != nil {
		return nil, fmt.Errorf("failed to update reservation: %w", err)
	}

	logger.Info("reservation rescheduled", "code", reservation.Code, "value_cents", value)
	return reservation, nil
}

func (s *reservationService) Cancel(ctx context.Context, code, taxID string, requestedAt time.Time) (int64, error) {
	reservation, err := s.reservationRepo.GetByCode(ctx, code)
	if err != nil {
		return 0, err
	}
	if reservation.Customer.TaxID != taxID {
		return 0, fmt.Errorf("%w: reservation does not belong to customer", domain.ErrReservationNotFound)
	}

	if reservation.Period.PickupAt.Sub(requestedAt) < cancellationWindowHours*time.Hour {
		return 0, domain.ErrCancellationWindowViolation
	}

	fee := s.cancellationFee(reservation, requestedAt)
	if err := reservation.Cancel(); err != nil {
		return 0, err
	}

	if err := s.reservationRepo.Update(ctx, reservation); err != nil {
		return 0, fmt.Errorf("failed to update reservation: %w", err)
	}

	logger.Info("reservation cancelled", "code", reservation.Code, "fee_cents", fee)
	return fee, nil
}

// cancellationFee is a policy hook. Cancellations inside the allowed window
// are currently free.
func (s *reservationService) cancellationFee(_ *domain.Reservation, _ time.Time) int64 {
	return 0
}

func (s *reservationService) GetByCode(ctx context.Context, code string) (*domain.Reservation, error) {
	return s.reservationRepo.GetByCode(ctx, code)
}

func (s *reservationService) ListByCustomer(ctx context.Context, taxID string) ([]domain.Reservation, error) {
	return s.reservationRepo.ListByCustomer(ctx, taxID)
}
