package service

import (
	"context"
	"time"

	"alugacar-backend/internal/domain"
)

// CustomerInput carries the customer data supplied at booking time.
type CustomerInput struct {
	Name            string `json:"name"`
	TaxID           string `json:"tax_id"`
	DriverLicenseID string `json:"driver_license_id"`
	Email           string `json:"email"`
}

// CreateReservationCommand books a category for a period.
type CreateReservationCommand struct {
	Category   domain.CategoryCode `json:"category"`
	PickupCity string              `json:"pickup_city"`
	PickupAt   time.Time           `json:"pickup_at"`
	ReturnAt   time.Time           `json:"return_at"`
	Customer   CustomerInput       `json:"customer"`
}

// PickupCommand converts an active reservation into a rental.
type PickupCommand struct {
	ReservationCode string `json:"reservation_code"`
	Plate           string `json:"plate"`
	ValidDocuments  bool   `json:"valid_documents"`
	OdometerKM      int    `json:"odometer_km"`
	FuelLevel       string `json:"fuel_level"`
}

// RentalContract is the immutable summary handed to the customer at pickup.
type RentalContract struct {
	RentalCode      string              `json:"rental_code"`
	ReservationCode string              `json:"reservation_code"`
	Plate           string              `json:"plate"`
	Status          domain.RentalStatus `json:"status"`
}

// ReturnCommand closes an active rental. DaysUsed of zero means the rental
// ran for exactly the planned term.
type ReturnCommand struct {
	RentalCode     string    `json:"rental_code"`
	OdometerKM     int       `json:"odometer_km"`
	FuelLevel      string    `json:"fuel_level"`
	HasDamage      bool      `json:"has_damage"`
	ReturnedAt     time.Time `json:"returned_at"`
	DaysUsed       int       `json:"days_used"`
	LateFeePercent float64   `json:"late_fee_percent"`
}

// AddVehicleCommand onboards a fleet unit.
type AddVehicleCommand struct {
	Plate          string              `json:"plate"`
	Model          string              `json:"model"`
	Category       domain.CategoryCode `json:"category"`
	City           string              `json:"city"`
	DailyRateCents int64               `json:"daily_rate_cents"`
}

type ReservationService interface {
	Create(ctx context.Context, cmd CreateReservationCommand) (*domain.Reservation, error)
	Reschedule(ctx context.Context, code string, pickupAt, returnAt time.Time) (*domain.Reservation, error)
	// Cancel returns the cancellation fee charged, in cents.
	Cancel(ctx context.Context, code, taxID string, requestedAt time.Time) (int64, error)
	GetByCode(ctx context.Context, code string) (*domain.Reservation, error)
	ListByCustomer(ctx context.Context, taxID string) ([]domain.Reservation, error)
}

type PickupService interface {
	ProcessPickup(ctx context.Context, cmd PickupCommand) (*RentalContract, error)
}

type ReturnService interface {
	ProcessReturn(ctx context.Context, cmd ReturnCommand) (*domain.Billing, error)
	GetRental(ctx context.Context, code string) (*domain.Rental, error)
	ListActiveRentals(ctx context.Context) ([]domain.Rental, error)
}

type MaintenanceService interface {
	// Schedule returns the emitted event; the caller publishes it after the
	// surrounding transaction commits.
	Schedule(ctx context.Context, plate string, expectedEnd time.Time, reason string) (*domain.MaintenanceEvent, error)
}

type CatalogService interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, code domain.CategoryCode) (*domain.Category, error)
	SaveCategory(ctx context.Context, category *domain.Category) error
	AddVehicle(ctx context.Context, cmd AddVehicleCommand) (*domain.Vehicle, error)
	GetVehicle(ctx context.Context, plate string) (*domain.Vehicle, error)
	ListAvailableVehicles(ctx context.Context, category domain.CategoryCode, city string) ([]domain.Vehicle, error)
	DecommissionVehicle(ctx context.Context, plate string) (*domain.Vehicle, error)
}

type CustomerService interface {
	Register(ctx context.Context, input CustomerInput) (*domain.Customer, error)
	GetByTaxID(ctx context.Context, taxID string) (*domain.Customer, error)
}

type EmailService interface {
	SendMaintenanceScheduledNotification(ctx context.Context, to string, event domain.MaintenanceEvent) error
	SendCancellationConfirmation(ctx context.Context, to, name, reservationCode string, feeCents int64) error
	SendMaintenanceDueReport(ctx context.Context, to, report string) error
}
