package postgres

import (
	"context"
	"database/sql"
	"time"

	"alugacar-backend/internal/domain"
	"alugacar-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	query := `INSERT INTO rentals (code, reservation_code, plate, planned_days, daily_rate_cents,
	                               late_fee_strategy, status, pickup_odometer_km, pickup_fuel_level,
	                               created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	now := time.Now()
	_, err := q(ctx, r.db).ExecContext(ctx, query,
		rt.Code, rt.ReservationCode, rt.Plate, rt.PlannedDays, rt.DailyRateCents,
		rt.LateFeeStrategy, rt.Status, rt.PickupInspection.OdometerKM, rt.PickupInspection.FuelLevel,
		now, now)
	return err
}

func (r *rentalRepository) Update(ctx context.Context, rt *domain.Rental) error {
	var odo sql.NullInt64
	var fuel sql.NullString
	var damage sql.NullBool
	if rt.ReturnInspection != nil {
		odo = sql.NullInt64{Int64: int64(rt.ReturnInspection.OdometerKM), Valid: true}
		fuel = sql.NullString{String: rt.ReturnInspection.FuelLevel, Valid: true}
		damage = sql.NullBool{Bool: rt.ReturnInspection.HasDamage, Valid: true}
	}
	query := `UPDATE rentals
	          SET status = $1, return_odometer_km = $2, return_fuel_level = $3, return_has_damage = $4, updated_on = $5
	          WHERE code = $6`
	_, err := q(ctx, r.db).ExecContext(ctx, query, rt.Status, odo, fuel, damage, time.Now(), rt.Code)
	return err
}

const rentalColumns = `l.code, l.reservation_code, l.plate, l.planned_days, l.daily_rate_cents,
	       l.late_fee_strategy, l.status, l.pickup_odometer_km, l.pickup_fuel_level,
	       l.return_odometer_km, l.return_fuel_level, l.return_has_damage`

func scanRental(row interface{ Scan(...interface{}) error }) (*domain.Rental, error) {
	rt := &domain.Rental{}
	var odo sql.NullInt64
	var fuel sql.NullString
	var damage sql.NullBool
	err := row.Scan(&rt.Code, &rt.ReservationCode, &rt.Plate, &rt.PlannedDays, &rt.DailyRateCents,
		&rt.LateFeeStrategy, &rt.Status, &rt.PickupInspection.OdometerKM, &rt.PickupInspection.FuelLevel,
		&odo, &fuel, &damage)
	if err != nil {
		return nil, err
	}
	if odo.Valid {
		rt.ReturnInspection = &domain.InspectionChecklist{
			OdometerKM: int(odo.Int64),
			FuelLevel:  fuel.String,
			HasDamage:  damage.Bool,
		}
	}
	return rt, nil
}

func (r *rentalRepository) GetByCode(ctx context.Context, code string) (*domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals l WHERE l.code = $1`
	rt, err := scanRental(q(ctx, r.db).QueryRowContext(ctx, query, code))
	if err == sql.ErrNoRows {
		return nil, domain.ErrRentalNotFound
	}
	if err != nil {
		return nil, err
	}
	return rt, nil
}

// Category and period live on the reservation, so the occupancy scan joins
// through it.
func (r *rentalRepository) ListActiveOverlapping(ctx context.Context, category domain.CategoryCode, period domain.Period) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + `
	          FROM rentals l JOIN reservations rv ON rv.code = l.reservation_code
	          WHERE l.status = $1 AND rv.category = $2
	            AND rv.return_at >= $3 AND rv.pickup_at <= $4`
	return r.queryList(ctx, query, domain.RentalStatusActive, category, period.PickupAt, period.ReturnAt)
}

func (r *rentalRepository) ListActive(ctx context.Context) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals l WHERE l.status = $1 ORDER BY l.created_on`
	return r.queryList(ctx, query, domain.RentalStatusActive)
}

func (r *rentalRepository) queryList(ctx context.Context, query string, args ...interface{}) ([]domain.Rental, error) {
	rows, err := q(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		rt, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, *rt)
	}
	return rentals, rows.Err()
}
