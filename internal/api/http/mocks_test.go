package http

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"alugacar-backend/internal/domain"
	"alugacar-backend/internal/service"
)

// MockReservationService
type MockReservationService struct {
	mock.Mock
}

func (m *MockReservationService) Create(ctx context.Context, cmd service.CreateReservationCommand) (*domain.Reservation, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationService) Reschedule(ctx context.Context, code string, pickupAt, returnAt time.Time) (*domain.Reservation, error) {
	args := m.Called(ctx, code, pickupAt, returnAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationService) Cancel(ctx context.Context, code, taxID string, requestedAt time.Time) (int64, error) {
	args := m.Called(ctx, code, taxID, requestedAt)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockReservationService) GetByCode(ctx context.Context, code string) (*domain.Reservation, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationService) ListByCustomer(ctx context.Context, taxID string) ([]domain.Reservation, error) {
	args := m.Called(ctx, taxID)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

// MockPickupService
type MockPickupService struct {
	mock.Mock
}

func (m *MockPickupService) ProcessPickup(ctx context.Context, cmd service.PickupCommand) (*service.RentalContract, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RentalContract), args.Error(1)
}

// MockReturnService
type MockReturnService struct {
	mock.Mock
}

func (m *MockReturnService) ProcessReturn(ctx context.Context, cmd service.ReturnCommand) (*domain.Billing, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Billing), args.Error(1)
}
func (m *MockReturnService) GetRental(ctx context.Context, code string) (*domain.Rental, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockReturnService) ListActiveRentals(ctx context.Context) ([]domain.Rental, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Rental), args.Error(1)
}

// MockMaintenanceService
type MockMaintenanceService struct {
	mock.Mock
}

func (m *MockMaintenanceService) Schedule(ctx context.Context, plate string, expectedEnd time.Time, reason string) (*domain.MaintenanceEvent, error) {
	args := m.Called(ctx, plate, expectedEnd, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MaintenanceEvent), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendMaintenanceScheduledNotification(ctx context.Context, to string, event domain.MaintenanceEvent) error {
	args := m.Called(ctx, to, event)
	return args.Error(0)
}
func (m *MockEmailService) SendCancellationConfirmation(ctx context.Context, to, name, reservationCode string, feeCents int64) error {
	args := m.Called(ctx, to, name, reservationCode, feeCents)
	return args.Error(0)
}
func (m *MockEmailService) SendMaintenanceDueReport(ctx context.Context, to, report string) error {
	args := m.Called(ctx, to, report)
	return args.Error(0)
}
