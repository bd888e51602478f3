package service

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"alugacar-backend/internal/cache"
	"alugacar-backend/internal/domain"
)

// MockCategoryRepo
type MockCategoryRepo struct {
	mock.Mock
}

func (m *MockCategoryRepo) Save(ctx context.Context, category *domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}
func (m *MockCategoryRepo) GetByCode(ctx context.Context, code domain.CategoryCode) (*domain.Category, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}
func (m *MockCategoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Category), args.Error(1)
}

// MockVehicleRepo
type MockVehicleRepo struct {
	mock.Mock
}

func (m *MockVehicleRepo) Save(ctx context.Context, vehicle *domain.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}
func (m *MockVehicleRepo) GetByPlate(ctx context.Context, plate string) (*domain.Vehicle, error) {
	args := m.Called(ctx, plate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) ListAvailable(ctx context.Context, category domain.CategoryCode, city string) ([]domain.Vehicle, error) {
	args := m.Called(ctx, category, city)
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) ListMaintenanceDue(ctx context.Context, asOf time.Time) ([]domain.Vehicle, error) {
	args := m.Called(ctx, asOf)
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}

// MockCustomerRepo
type MockCustomerRepo struct {
	mock.Mock
}

func (m *MockCustomerRepo) Save(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}
func (m *MockCustomerRepo) GetByTaxID(ctx context.Context, taxID string) (*domain.Customer, error) {
	args := m.Called(ctx, taxID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

// MockReservationRepo
type MockReservationRepo struct {
	mock.Mock
}

func (m *MockReservationRepo) Create(ctx context.Context, reservation *domain.Reservation) error {
	args := m.Called(ctx, reservation)
	return args.Error(0)
}
func (m *MockReservationRepo) GetByCode(ctx context.Context, code string) (*domain.Reservation, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) Update(ctx context.Context, reservation *domain.Reservation) error {
	args := m.Called(ctx, reservation)
	return args.Error(0)
}
func (m *MockReservationRepo) ListActiveOverlapping(ctx context.Context, category domain.CategoryCode, period domain.Period) ([]domain.Reservation, error) {
	args := m.Called(ctx, category, period)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) ListByCustomer(ctx context.Context, taxID string) ([]domain.Reservation, error) {
	args := m.Called(ctx, taxID)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

// MockRentalRepo
type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) Create(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}
func (m *MockRentalRepo) GetByCode(ctx context.Context, code string) (*domain.Rental, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) Update(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}
func (m *MockRentalRepo) ListActiveOverlapping(ctx context.Context, category domain.CategoryCode, period domain.Period) ([]domain.Rental, error) {
	args := m.Called(ctx, category, period)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) ListActive(ctx context.Context) ([]domain.Rental, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Rental), args.Error(1)
}

// fakeTransactor runs the callback directly, without a database.
type fakeTransactor struct{}

func (fakeTransactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fakeCache is an in-memory cache.Client.
type fakeCache struct {
	data map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string]string)}
}

func (c *fakeCache) Get(_ context.Context, key string) (string, error) {
	v, ok := c.data[key]
	if !ok {
		return "", cache.ErrCacheMiss
	}
	return v, nil
}

func (c *fakeCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	switch v := value.(type) {
	case []byte:
		c.data[key] = string(v)
	case string:
		c.data[key] = v
	}
	return nil
}

func (c *fakeCache) Delete(_ context.Context, key string) error {
	delete(c.data, key)
	return nil
}

// memStore is an in-memory repository set whose reads hand out copies, the
// way the SQL repositories do. The race tests need reads that do not alias
// the stored records.
type memStore struct {
	mu            sync.Mutex
	reservations  map[string]domain.Reservation
	rentals       map[string]domain.Rental
	vehicles      map[string]domain.Vehicle
	rentalUpdates int
}

func newMemStore() *memStore {
	return &memStore{
		reservations: make(map[string]domain.Reservation),
		rentals:      make(map[string]domain.Rental),
		vehicles:     make(map[string]domain.Vehicle),
	}
}

type memReservationRepo struct{ s *memStore }

func (r memReservationRepo) Create(_ context.Context, reservation *domain.Reservation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.reservations[reservation.Code] = *reservation
	return nil
}

func (r memReservationRepo) GetByCode(_ context.Context, code string) (*domain.Reservation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	reservation, ok := r.s.reservations[code]
	if !ok {
		return nil, domain.ErrReservationNotFound
	}
	return &reservation, nil
}

func (r memReservationRepo) Update(_ context.Context, reservation *domain.Reservation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.reservations[reservation.Code] = *reservation
	return nil
}

func (r memReservationRepo) ListActiveOverlapping(_ context.Context, category domain.CategoryCode, period domain.Period) ([]domain.Reservation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []domain.Reservation
	for _, reservation := range r.s.reservations {
		if reservation.Category == category && reservation.Status == domain.ReservationStatusActive && reservation.Period.Overlaps(period) {
			out = append(out, reservation)
		}
	}
	return out, nil
}

func (r memReservationRepo) ListByCustomer(_ context.Context, taxID string) ([]domain.Reservation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []domain.Reservation
	for _, reservation := range r.s.reservations {
		if reservation.Customer.TaxID == taxID {
			out = append(out, reservation)
		}
	}
	return out, nil
}

type memRentalRepo struct{ s *memStore }

func (r memRentalRepo) Create(_ context.Context, rental *domain.Rental) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.rentals[rental.Code] = *rental
	return nil
}

func (r memRentalRepo) GetByCode(_ context.Context, code string) (*domain.Rental, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rental, ok := r.s.rentals[code]
	if !ok {
		return nil, domain.ErrRentalNotFound
	}
	return &rental, nil
}

func (r memRentalRepo) Update(_ context.Context, rental *domain.Rental) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.rentals[rental.Code] = *rental
	r.s.rentalUpdates++
	return nil
}

func (r memRentalRepo) ListActiveOverlapping(_ context.Context, _ domain.CategoryCode, _ domain.Period) ([]domain.Rental, error) {
	return nil, nil
}

func (r memRentalRepo) ListActive(_ context.Context) ([]domain.Rental, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []domain.Rental
	for _, rental := range r.s.rentals {
		if rental.Status == domain.RentalStatusActive {
			out = append(out, rental)
		}
	}
	return out, nil
}

type memVehicleRepo struct{ s *memStore }

func (r memVehicleRepo) Save(_ context.Context, vehicle *domain.Vehicle) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.vehicles[vehicle.Plate] = *vehicle
	return nil
}

func (r memVehicleRepo) GetByPlate(_ context.Context, plate string) (*domain.Vehicle, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	vehicle, ok := r.s.vehicles[plate]
	if !ok {
		return nil, domain.ErrVehicleNotFound
	}
	return &vehicle, nil
}

func (r memVehicleRepo) ListAvailable(_ context.Context, _ domain.CategoryCode, _ string) ([]domain.Vehicle, error) {
	return nil, nil
}

func (r memVehicleRepo) ListMaintenanceDue(_ context.Context, _ time.Time) ([]domain.Vehicle, error) {
	return nil, nil
}
