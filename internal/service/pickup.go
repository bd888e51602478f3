package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"alugacar-backend/internal/domain"
	"alugacar-backend/internal/logger"
	"alugacar-backend/internal/repository"
)

type pickupService struct {
	reservationRepo repository.ReservationRepository
	vehicleRepo     repository.VehicleRepository
	rentalRepo      repository.RentalRepository
	tx              repository.Transactor
	locks           *CategoryLocks
}

func NewPickupService(
	reservationRepo repository.ReservationRepository,
	vehicleRepo repository.VehicleRepository,
	rentalRepo repository.RentalRepository,
	tx repository.Transactor,
	locks *CategoryLocks,
) PickupService {
	return &pickupService{
		reservationRepo: reservationRepo,
		vehicleRepo:     vehicleRepo,
		rentalRepo:      rentalRepo,
		tx:              tx,
		locks:           locks,
	}
}

// ProcessPickup runs the eligibility chain and, only once every check has
// passed, converts the reservation into an active rental. A failure at any
// step leaves reservation and vehicle untouched.
func (s *pickupService) ProcessPickup(ctx context.Context, cmd PickupCommand) (*RentalContract, error) {
	reservation, err := s.reservationRepo.GetByCode(ctx, cmd.ReservationCode)
	if err != nil {
		return nil, err
	}

	// The first read only resolves the category the lock is keyed on.
	// Re-read under the lock so the eligibility chain and the commit
	// observe one state; otherwise two pickups of the same reservation
	// could both pass the ACTIVE check and create two rentals.
	unlock := s.locks.Lock(reservation.Category)
	defer unlock()

	reservation, err = s.reservationRepo.GetByCode(ctx, cmd.ReservationCode)
	if err != nil {
		return nil, err
	}
	if !reservation.Status.Active() {
		return nil, domain.ErrReservationNotProcessable
	}

	if !cmd.ValidDocuments {
		return nil, domain.ErrInvalidCredentials
	}

	vehicle, err := s.vehicleRepo.GetByPlate(ctx, strings.ToUpper(cmd.Plate))
	if err != nil {
		return nil, err
	}

	switch {
	case vehicle.Status == domain.VehicleStatusSold:
		return nil, domain.ErrVehicleSold
	case vehicle.Status == domain.VehicleStatusInMaintenance:
		return nil, domain.ErrVehicleUnderMaintenance
	case !vehicle.Available():
		return nil, domain.ErrVehicleUnavailable
	}
	if vehicle.Category != reservation.Category {
		return nil, domain.ErrCategoryMismatch
	}

	rental := &domain.Rental{
		Code:            uuid.NewString(),
		ReservationCode: reservation.Code,
		Plate:           vehicle.Plate,
		PlannedDays:     reservation.Period.DurationDays(),
		DailyRateCents:  vehicle.DailyRateCents,
		LateFeeStrategy: domain.LateFeeStandard,
		Status:          domain.RentalStatusActive,
		PickupInspection: domain.InspectionChecklist{
			OdometerKM: cmd.OdometerKM,
			FuelLevel:  cmd.FuelLevel,
			HasDamage:  false,
		},
	}

	err = s.tx.WithinTx(ctx, func(txCtx context.Context) error {
		if err := vehicle.Rent(); err != nil {
			return err
		}
		if err := s.vehicleRepo.Save(txCtx, vehicle); err != nil {
			return fmt.Errorf("failed to update vehicle: %w", err)
		}
		if err := s.rentalRepo.Create(txCtx, rental); err != nil {
			return fmt.Errorf("failed to create rental: %w", err)
		}
		if err := reservation.Complete(); err != nil {
			return err
		}
		if err := s.reservationRepo.Update(txCtx, reservation); err != nil {
			return fmt.Errorf("failed to update reservation: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("pickup processed",
		"rental_code", rental.Code,
		"reservation_code", reservation.Code,
		"plate", rental.Plate,
		"daily_rate_cents", rental.DailyRateCents)

	return &RentalContract{
		RentalCode:      rental.Code,
		ReservationCode: rental.ReservationCode,
		Plate:           rental.Plate,
		Status:          rental.Status,
	}, nil
}
