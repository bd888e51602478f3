package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"alugacar-backend/internal/domain"
)

func TestMaintenanceService_Schedule(t *testing.T) {
	expectedEnd := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	t.Run("available vehicle is scheduled and the event is emitted", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepo)
		svc := NewMaintenanceService(vehicleRepo)

		v, err := domain.NewVehicle("ABC1D23", "Onix", domain.CategoryEconomy, "Recife", 5000)
		require.NoError(t, err)
		vehicleRepo.On("GetByPlate", mock.Anything, "ABC1D23").Return(v, nil)
		vehicleRepo.On("Save", mock.Anything, v).Return(nil)

		event, err := svc.Schedule(context.Background(), "abc1d23", expectedEnd, "timing belt")
		require.NoError(t, err)

		assert.Equal(t, "ABC1D23", event.Plate)
		assert.Equal(t, domain.CategoryEconomy, event.Category)
		assert.Equal(t, "timing belt", event.Reason)
		assert.Equal(t, expectedEnd, event.ExpectedEnd)
		assert.Equal(t, domain.VehicleStatusInMaintenance, v.Status)
	})

	t.Run("rented vehicle is rejected", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepo)
		svc := NewMaintenanceService(vehicleRepo)

		v, err := domain.NewVehicle("ABC1D23", "Onix", domain.CategoryEconomy, "Recife", 5000)
		require.NoError(t, err)
		require.NoError(t, v.Rent())
		vehicleRepo.On("GetByPlate", mock.Anything, "ABC1D23").Return(v, nil)

		_, err = svc.Schedule(context.Background(), "ABC1D23", expectedEnd, "timing belt")
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
		vehicleRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("blank reason", func(t *testing.T) {
		svc := NewMaintenanceService(new(MockVehicleRepo))
		_, err := svc.Schedule(context.Background(), "ABC1D23", expectedEnd, "   ")
		assert.ErrorIs(t, err, domain.ErrInvalidMaintenance)
	})
}
