package postgres

import (
	"context"
	"database/sql"
	"time"

	"alugacar-backend/internal/domain"
	"alugacar-backend/internal/repository"
)

type vehicleRepository struct {
	db *sql.DB
}

func NewVehicleRepository(db *sql.DB) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

func (r *vehicleRepository) Save(ctx context.Context, v *domain.Vehicle) error {
	var yardCode, yardCity sql.NullString
	if v.Yard != nil {
		yardCode = sql.NullString{String: v.Yard.Code, Valid: true}
		yardCity = sql.NullString{String: v.Yard.City, Valid: true}
	}
	query := `INSERT INTO vehicles (plate, model, category, city, daily_rate_cents, status,
	                                scheduled_maintenance_date, maintenance_note, yard_code, yard_city, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	          ON CONFLICT (plate) DO UPDATE
	          SET status = $6, scheduled_maintenance_date = $7, maintenance_note = $8,
	              yard_code = $9, yard_city = $10, updated_on = $11`
	_, err := q(ctx, r.db).ExecContext(ctx, query,
		v.Plate, v.Model, v.Category, v.City, v.DailyRateCents, v.Status,
		v.ScheduledMaintenanceDate, v.MaintenanceNote, yardCode, yardCity, time.Now())
	return err
}

const vehicleColumns = `plate, model, category, city, daily_rate_cents, status,
                        scheduled_maintenance_date, maintenance_note, yard_code, yard_city`

func scanVehicle(row interface{ Scan(...interface{}) error }) (*domain.Vehicle, error) {
	v := &domain.Vehicle{}
	var note sql.NullString
	var yardCode, yardCity sql.NullString
	err := row.Scan(&v.Plate, &v.Model, &v.Category, &v.City, &v.DailyRateCents, &v.Status,
		&v.ScheduledMaintenanceDate, &note, &yardCode, &yardCity)
	if err != nil {
		return nil, err
	}
	v.MaintenanceNote = note.String
	if yardCode.Valid {
		v.Yard = &domain.Yard{Code: yardCode.String, City: yardCity.String}
	}
	return v, nil
}

func (r *vehicleRepository) GetByPlate(ctx context.Context, plate string) (*domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE plate = $1`
	v, err := scanVehicle(q(ctx, r.db).QueryRowContext(ctx, query, plate))
	if err == sql.ErrNoRows {
		return nil, domain.ErrVehicleNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *vehicleRepository) ListAvailable(ctx context.Context, category domain.CategoryCode, city string) ([]domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE status = $1`
	args := []interface{}{domain.VehicleStatusAvailable}
	if category != "" {
		args = append(args, category)
		query += ` AND category = $2`
	}
	if city != "" {
		args = append(args, city)
		if category != "" {
			query += ` AND city = $3`
		} else {
			query += ` AND city = $2`
		}
	}
	query += ` ORDER BY plate`

	rows, err := q(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, *v)
	}
	return vehicles, rows.Err()
}

func (r *vehicleRepository) ListMaintenanceDue(ctx context.Context, asOf time.Time) ([]domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles
	          WHERE status = $1 AND scheduled_maintenance_date IS NOT NULL AND scheduled_maintenance_date < $2
	          ORDER BY scheduled_maintenance_date`
	rows, err := q(ctx, r.db).QueryContext(ctx, query, domain.VehicleStatusInMaintenance, asOf)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, *v)
	}
	return vehicles, rows.Err()
}
