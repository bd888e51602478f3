package postgres

import (
	"context"
	"database/sql"
	"time"

	"alugacar-backend/internal/domain"
	"alugacar-backend/internal/repository"
)

type reservationRepository struct {
	db *sql.DB
}

func NewReservationRepository(db *sql.DB) repository.ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) Create(ctx context.Context, rv *domain.Reservation) error {
	query := `INSERT INTO reservations (code, category, pickup_city, pickup_at, return_at,
	                                    estimated_value_cents, status, customer_tax_id, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	now := time.Now()
	_, err := q(ctx, r.db).ExecContext(ctx, query,
		rv.Code, rv.Category, rv.PickupCity, rv.Period.PickupAt, rv.Period.ReturnAt,
		rv.EstimatedValueCents, rv.Status, rv.Customer.TaxID, now, now)
	return err
}

func (r *reservationRepository) Update(ctx context.Context, rv *domain.Reservation) error {
	query := `UPDATE reservations
	          SET pickup_at = $1, return_at = $2, estimated_value_cents = $3, status = $4, updated_on = $5
	          WHERE code = $6`
	_, err := q(ctx, r.db).ExecContext(ctx, query,
		rv.Period.PickupAt, rv.Period.ReturnAt, rv.EstimatedValueCents, rv.Status, time.Now(), rv.Code)
	return err
}

const reservationColumns = `r.code, r.category, r.pickup_city, r.pickup_at, r.return_at,
	       r.estimated_value_cents, r.status,
	       c.tax_id, c.name, c.driver_license_id, c.email`

func scanReservation(row interface{ Scan(...interface{}) error }) (*domain.Reservation, error) {
	rv := &domain.Reservation{}
	err := row.Scan(&rv.Code, &rv.Category, &rv.PickupCity, &rv.Period.PickupAt, &rv.Period.ReturnAt,
		&rv.EstimatedValueCents, &rv.Status,
		&rv.Customer.TaxID, &rv.Customer.Name, &rv.Customer.DriverLicenseID, &rv.Customer.Email)
	if err != nil {
		return nil, err
	}
	return rv, nil
}

func (r *reservationRepository) GetByCode(ctx context.Context, code string) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
	          FROM reservations r JOIN customers c ON c.tax_id = r.customer_tax_id
	          WHERE r.code = $1`
	rv, err := scanReservation(q(ctx, r.db).QueryRowContext(ctx, query, code))
	if err == sql.ErrNoRows {
		return nil, domain.ErrReservationNotFound
	}
	if err != nil {
		return nil, err
	}
	return rv, nil
}

// The overlap predicate is the closed-interval test: an existing window
// conflicts unless it ends strictly before the requested one starts or
// starts strictly after it ends.
func (r *reservationRepository) ListActiveOverlapping(ctx context.Context, category domain.CategoryCode, period domain.Period) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
	          FROM reservations r JOIN customers c ON c.tax_id = r.customer_tax_id
	          WHERE r.category = $1 AND r.status = $2
	            AND r.return_at >= $3 AND r.pickup_at <= $4`
	return r.queryList(ctx, query, category, domain.ReservationStatusActive, period.PickupAt, period.ReturnAt)
}

func (r *reservationRepository) ListByCustomer(ctx context.Context, taxID string) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
	          FROM reservations r JOIN customers c ON c.tax_id = r.customer_tax_id
	          WHERE c.tax_id = $1 ORDER BY r.pickup_at DESC`
	return r.queryList(ctx, query, taxID)
}

func (r *reservationRepository) queryList(ctx context.Context, query string, args ...interface{}) ([]domain.Reservation, error) {
	rows, err := q(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reservations []domain.Reservation
	for rows.Next() {
		rv, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, *rv)
	}
	return reservations, rows.Err()
}
