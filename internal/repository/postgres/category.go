package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"alugacar-backend/internal/domain"
	"alugacar-backend/internal/repository"
)

type categoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Save(ctx context.Context, c *domain.Category) error {
	query := `INSERT INTO categories (code, name, description, daily_rate_cents, example_models, capacity)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          ON CONFLICT (code) DO UPDATE
	          SET name = $2, description = $3, daily_rate_cents = $4, example_models = $5, capacity = $6`
	_, err := q(ctx, r.db).ExecContext(ctx, query,
		c.Code, c.Name, c.Description, c.DailyRateCents, pq.Array(c.ExampleModels), c.Capacity)
	return err
}

func (r *categoryRepository) GetByCode(ctx context.Context, code domain.CategoryCode) (*domain.Category, error) {
	c := &domain.Category{}
	query := `SELECT code, name, description, daily_rate_cents, example_models, capacity
	          FROM categories WHERE code = $1`
	err := q(ctx, r.db).QueryRowContext(ctx, query, code).Scan(
		&c.Code, &c.Name, &c.Description, &c.DailyRateCents, pq.Array(&c.ExampleModels), &c.Capacity)
	if err == sql.ErrNoRows {
		return nil, domain.ErrCategoryNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *categoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	query := `SELECT code, name, description, daily_rate_cents, example_models, capacity
	          FROM categories ORDER BY daily_rate_cents`
	rows, err := q(ctx, r.db).QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.Code, &c.Name, &c.Description, &c.DailyRateCents, pq.Array(&c.ExampleModels), &c.Capacity); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}
