package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"alugacar-backend/internal/repository"
)

type Store struct {
	db *sql.DB
	repository.CategoryRepository
	repository.VehicleRepository
	repository.CustomerRepository
	repository.ReservationRepository
	repository.RentalRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		CategoryRepository:    NewCategoryRepository(db),
		VehicleRepository:     NewVehicleRepository(db),
		CustomerRepository:    NewCustomerRepository(db),
		ReservationRepository: NewReservationRepository(db),
		RentalRepository:      NewRentalRepository(db),
	}
}

type txKey struct{}

// WithinTx runs fn in a single transaction. Repository methods called with
// the derived context execute on that transaction, so multi-aggregate
// mutations (finalize rental + route vehicle) commit or roll back together.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && rbErr != sql.ErrTxDone {
			return fmt.Errorf("rollback after %v: %w", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// q returns the transaction carried by ctx, if any, or the plain connection.
func q(ctx context.Context, db *sql.DB) querier {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return tx
	}
	return db
}
