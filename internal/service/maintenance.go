package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"alugacar-backend/internal/domain"
	"alugacar-backend/internal/logger"
	"alugacar-backend/internal/repository"
)

type maintenanceService struct {
	vehicleRepo repository.VehicleRepository
}

func NewMaintenanceService(vehicleRepo repository.VehicleRepository) MaintenanceService {
	return &maintenanceService{vehicleRepo: vehicleRepo}
}

func (s *maintenanceService) Schedule(ctx context.Context, plate string, expectedEnd time.Time, reason string) (*domain.MaintenanceEvent, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, fmt.Errorf("%w: reason is required", domain.ErrInvalidMaintenance)
	}

	vehicle, err := s.vehicleRepo.GetByPlate(ctx, strings.ToUpper(plate))
	if err != nil {
		return nil, err
	}

	if err := vehicle.ScheduleMaintenance(expectedEnd, reason); err != nil {
		return nil, err
	}
	if err := s.vehicleRepo.Save(ctx, vehicle); err != nil {
		return nil, fmt.Errorf("failed to update vehicle: %w", err)
	}

	event := domain.MaintenanceEvent{
		Plate:       vehicle.Plate,
		Category:    vehicle.Category,
		Reason:      reason,
		StartedAt:   time.Now().UTC(),
		ExpectedEnd: expectedEnd,
	}

	logger.Info("maintenance scheduled",
		"plate", event.Plate,
		"reason", event.Reason,
		"expected_end", event.ExpectedEnd)
	return &event, nil
}
