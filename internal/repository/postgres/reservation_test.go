package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alugacar-backend/internal/domain"
	"alugacar-backend/internal/repository/postgres"
)

func testReservation(t *testing.T) *domain.Reservation {
	t.Helper()
	base := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	period, err := domain.NewPeriod(base, base.Add(96*time.Hour))
	require.NoError(t, err)
	return &domain.Reservation{
		Code:                "res-1",
		Category:            domain.CategoryEconomy,
		PickupCity:          "São Paulo",
		Period:              period,
		EstimatedValueCents: 20000,
		Status:              domain.ReservationStatusActive,
		Customer: domain.Customer{
			TaxID:           "12345678901",
			Name:            "Maria Silva",
			DriverLicenseID: "98765432109",
			Email:           "maria@example.com",
		},
	}
}

func TestReservationRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewReservationRepository(db)
	ctx := context.Background()
	reservation := testReservation(t)

	mock.ExpectExec("INSERT INTO reservations").
		WithArgs(reservation.Code, reservation.Category, reservation.PickupCity,
			reservation.Period.PickupAt, reservation.Period.ReturnAt,
			reservation.EstimatedValueCents, reservation.Status, reservation.Customer.TaxID,
			sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Create(ctx, reservation))
}

func TestReservationRepository_GetByCode(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewReservationRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		base := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
		rows := sqlmock.NewRows([]string{"code", "category", "pickup_city", "pickup_at", "return_at",
			"estimated_value_cents", "status", "tax_id", "name", "driver_license_id", "email"}).
			AddRow("res-1", "ECONOMY", "São Paulo", base, base.Add(96*time.Hour),
				20000, "ACTIVE", "12345678901", "Maria Silva", "98765432109", "maria@example.com")

		mock.ExpectQuery("SELECT (.+) FROM reservations r JOIN customers c").
			WithArgs("res-1").
			WillReturnRows(rows)

		reservation, err := repo.GetByCode(ctx, "res-1")
		assert.NoError(t, err)
		assert.Equal(t, "res-1", reservation.Code)
		assert.Equal(t, domain.CategoryEconomy, reservation.Category)
		assert.Equal(t, "Maria Silva", reservation.Customer.Name)
		assert.Equal(t, 4, reservation.Period.DurationDays())
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM reservations r JOIN customers c").
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows([]string{"code"}))

		_, err := repo.GetByCode(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrReservationNotFound)
	})
}

func TestReservationRepository_ListActiveOverlapping(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewReservationRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	period, err := domain.NewPeriod(base, base.Add(48*time.Hour))
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"code", "category", "pickup_city", "pickup_at", "return_at",
		"estimated_value_cents", "status", "tax_id", "name", "driver_license_id", "email"}).
		AddRow("res-1", "ECONOMY", "São Paulo", base, base.Add(24*time.Hour),
			5000, "ACTIVE", "12345678901", "Maria", "98765432109", "maria@example.com")

	mock.ExpectQuery("SELECT (.+) FROM reservations r JOIN customers c").
		WithArgs(domain.CategoryEconomy, domain.ReservationStatusActive, period.PickupAt, period.ReturnAt).
		WillReturnRows(rows)

	reservations, err := repo.ListActiveOverlapping(ctx, domain.CategoryEconomy, period)
	assert.NoError(t, err)
	assert.Len(t, reservations, 1)
}

func TestReservationRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewReservationRepository(db)
	ctx := context.Background()
	reservation := testReservation(t)
	require.NoError(t, reservation.Cancel())

	mock.ExpectExec("UPDATE reservations").
		WithArgs(reservation.Period.PickupAt, reservation.Period.ReturnAt,
			reservation.EstimatedValueCents, reservation.Status, sqlmock.AnyArg(), reservation.Code).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Update(ctx, reservation))
}
