package postgres

import (
	"context"
	"database/sql"

	"alugacar-backend/internal/domain"
	"alugacar-backend/internal/repository"
)

type customerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Save(ctx context.Context, c *domain.Customer) error {
	query := `INSERT INTO customers (tax_id, name, driver_license_id, email)
	          VALUES ($1, $2, $3, $4)
	          ON CONFLICT (tax_id) DO UPDATE
	          SET name = $2, driver_license_id = $3, email = $4`
	_, err := q(ctx, r.db).ExecContext(ctx, query, c.TaxID, c.Name, c.DriverLicenseID, c.Email)
	return err
}

func (r *customerRepository) GetByTaxID(ctx context.Context, taxID string) (*domain.Customer, error) {
	c := &domain.Customer{}
	query := `SELECT tax_id, name, driver_license_id, email FROM customers WHERE tax_id = $1`
	err := q(ctx, r.db).QueryRowContext(ctx, query, taxID).Scan(&c.TaxID, &c.Name, &c.DriverLicenseID, &c.Email)
	if err == sql.ErrNoRows {
		return nil, domain.ErrCustomerNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}
