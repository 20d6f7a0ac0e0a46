package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/perfumanager/pos-api/internal/domain"
	"github.com/perfumanager/pos-api/internal/domain/entity"
	"github.com/perfumanager/pos-api/internal/domain/repository"
)

var _ repository.BrandRepository = (*BrandRepo)(nil)

// BrandRepo adaptador PostgreSQL para marcas.
type BrandRepo struct {
	q Querier
}

func NewBrandRepository(q Querier) *BrandRepo {
	return &BrandRepo{q: q}
}

func (r *BrandRepo) Create(brand *entity.Brand) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO brands (nombre, created_at) VALUES ($1, $2) RETURNING id`,
		brand.Name, brand.CreatedAt,
	).Scan(&brand.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert brand: %w", err)
	}
	return nil
}

func (r *BrandRepo) GetByID(id int64) (*entity.Brand, error) {
	var b entity.Brand
	err := r.q.QueryRow(context.Background(),
		`SELECT id, nombre, created_at FROM brands WHERE id = $1`, id,
	).Scan(&b.ID, &b.Name, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get brand: %w", err)
	}
	return &b, nil
}

func (r *BrandRepo) GetByName(name string) (*entity.Brand, error) {
	var b entity.Brand
	err := r.q.QueryRow(context.Background(),
		`SELECT id, nombre, created_at FROM brands WHERE lower(nombre) = lower($1)`, name,
	).Scan(&b.ID, &b.Name, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get brand by name: %w", err)
	}
	return &b, nil
}

func (r *BrandRepo) List() ([]*entity.Brand, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, nombre, created_at FROM brands ORDER BY nombre ASC`)
	if err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	defer rows.Close()

	var list []*entity.Brand
	for rows.Next() {
		var b entity.Brand
		if err := rows.Scan(&b.ID, &b.Name, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan brand: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}
