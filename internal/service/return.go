package service

import (
	"context"
	"fmt"

	"alugacar-backend/internal/domain"
	"alugacar-backend/internal/logger"
	"alugacar-backend/internal/repository"
)

type returnService struct {
	rentalRepo      repository.RentalRepository
	reservationRepo repository.ReservationRepository
	vehicleRepo     repository.VehicleRepository
	tx              repository.Transactor
	locks           *CategoryLocks
}

func NewReturnService(
	rentalRepo repository.RentalRepository,
	reservationRepo repository.ReservationRepository,
	vehicleRepo repository.VehicleRepository,
	tx repository.Transactor,
	locks *CategoryLocks,
) ReturnService {
	return &returnService{
		rentalRepo:      rentalRepo,
		reservationRepo: reservationRepo,
		vehicleRepo:     vehicleRepo,
		tx:              tx,
		locks:           locks,
	}
}

// ProcessReturn inspects the vehicle, settles the bill and routes the unit
// back to the fleet. Rental and vehicle are persisted in one transaction so
// a finished rental never leaves the vehicle stuck in RENTED.
func (s *returnService) ProcessReturn(ctx context.Context, cmd ReturnCommand) (*domain.Billing, error) {
	rental, err := s.rentalRepo.GetByCode(ctx, cmd.RentalCode)
	if err != nil {
		return nil, err
	}
	reservation, err := s.reservationRepo.GetByCode(ctx, rental.ReservationCode)
	if err != nil {
		return nil, err
	}

	// The reads above only resolve the category the lock is keyed on.
	// Re-read the rental under the lock so the FINISHED check and the
	// finalize see one state; otherwise two concurrent returns could
	// both bill the same rental.
	unlock := s.locks.Lock(reservation.Category)
	defer unlock()

	rental, err = s.rentalRepo.GetByCode(ctx, cmd.RentalCode)
	if err != nil {
		return nil, err
	}
	if rental.Status == domain.RentalStatusFinished {
		return nil, domain.ErrRentalAlreadyFinished
	}
	if rental.Status != domain.RentalStatusActive {
		return nil, domain.ErrRentalNotActive
	}

	vehicle, err := s.vehicleRepo.GetByPlate(ctx, rental.Plate)
	if err != nil {
		return nil, err
	}

	daysUsed := cmd.DaysUsed
	if daysUsed <= 0 {
		daysUsed = rental.PlannedDays
	}

	var extraFees int64
	if cmd.FuelLevel != domain.FuelLevelFull {
		extraFees += domain.FuelSurchargeCents
	}
	if cmd.HasDamage {
		extraFees += domain.DamageSurchargeCents
	}

	inspection := domain.InspectionChecklist{
		OdometerKM: cmd.OdometerKM,
		FuelLevel:  cmd.FuelLevel,
		HasDamage:  cmd.HasDamage,
	}
	if err := rental.RecordReturnInspection(inspection); err != nil {
		return nil, err
	}

	billing, err := rental.Finalize(daysUsed, cmd.LateFeePercent, extraFees)
	if err != nil {
		return nil, err
	}

	if cmd.HasDamage {
		vehicle.SendToMaintenance()
	} else {
		vehicle.Return(domain.YardForCity(reservation.PickupCity))
	}

	err = s.tx.WithinTx(ctx, func(txCtx context.Context) error {
		if err := s.rentalRepo.Update(txCtx, rental); err != nil {
			return fmt.Errorf("failed to update rental: %w", err)
		}
		if err := s.vehicleRepo.Save(txCtx, vehicle); err != nil {
			return fmt.Errorf("failed to update vehicle: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("return processed",
		"rental_code", rental.Code,
		"plate", rental.Plate,
		"total_cents", billing.TotalCents,
		"has_damage", cmd.HasDamage,
		"returned_at", cmd.ReturnedAt)
	return &billing, nil
}

func (s *returnService) GetRental(ctx context.Context, code string) (*domain.Rental, error) {
	return s.rentalRepo.GetByCode(ctx, code)
}

func (s *returnService) ListActiveRentals(ctx context.Context) ([]domain.Rental, error) {
	return s.rentalRepo.ListActive(ctx)
}
