package repository

import (
	"context"
	"time"

	"alugacar-backend/internal/domain"
)

// Transactor runs fn inside a single database transaction. Repository calls
// made with the context passed to fn join that transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type CategoryRepository interface {
	Save(ctx context.Context, category *domain.Category) error
	GetByCode(ctx context.Context, code domain.CategoryCode) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
}

type VehicleRepository interface {
	Save(ctx context.Context, vehicle *domain.Vehicle) error
	GetByPlate(ctx context.Context, plate string) (*domain.Vehicle, error)
	ListAvailable(ctx context.Context, category domain.CategoryCode, city string) ([]domain.Vehicle, error)
	ListMaintenanceDue(ctx context.Context, asOf time.Time) ([]domain.Vehicle, error)
}

type CustomerRepository interface {
	Save(ctx context.Context, customer *domain.Customer) error
	GetByTaxID(ctx context.Context, taxID string) (*domain.Customer, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) error
	GetByCode(ctx context.Context, code string) (*domain.Reservation, error)
	Update(ctx context.Context, reservation *domain.Reservation) error
	// ListActiveOverlapping returns ACTIVE reservations of the category whose
	// period overlaps the given one (closed-interval test). Feeds the
	// occupancy calculation.
	ListActiveOverlapping(ctx context.Context, category domain.CategoryCode, period domain.Period) ([]domain.Reservation, error)
	ListByCustomer(ctx context.Context, taxID string) ([]domain.Reservation, error)
}

type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	GetByCode(ctx context.Context, code string) (*domain.Rental, error)
	Update(ctx context.Context, rental *domain.Rental) error
	// ListActiveOverlapping returns ACTIVE rentals whose reservation is of the
	// category and overlaps the period. The other half of occupancy.
	ListActiveOverlapping(ctx context.Context, category domain.CategoryCode, period domain.Period) ([]domain.Rental, error)
	ListActive(ctx context.Context) ([]domain.Rental, error)
}
