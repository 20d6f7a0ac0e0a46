package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/perfumanager/pos-api/internal/domain/entity"
	"github.com/perfumanager/pos-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo adaptador PostgreSQL para ventas y sus items.
type SaleRepo struct {
	q Querier
}

func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

func (r *SaleRepo) Create(sale *entity.Sale) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO sales (fecha_venta, total_bob, created_at)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		sale.SaleDate, sale.TotalAmount, sale.CreatedAt,
	).Scan(&sale.ID)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

func (r *SaleRepo) CreateItem(item *entity.SaleItem) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO sale_items (sale_id, product_id, cantidad, precio_unitario_bob)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		item.SaleID, item.ProductID, item.Quantity, item.UnitPrice,
	).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("insert sale item: %w", err)
	}
	return nil
}

func (r *SaleRepo) GetByID(ctx context.Context, id int64) (*entity.Sale, error) {
	sale, err := scanSale(r.q.QueryRow(ctx,
		`SELECT id, fecha_venta::text, total_bob, created_at FROM sales WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	if err := r.loadItems(ctx, []*entity.Sale{sale}); err != nil {
		return nil, err
	}
	return sale, nil
}

// List devuelve las ventas del rango, fecha descendente. Los empates de
// fecha se resuelven por id descendente (más reciente primero).
func (r *SaleRepo) List(ctx context.Context, dateRange repository.DateRange) ([]*entity.Sale, error) {
	var conds []string
	var args []any
	if dateRange.From != "" {
		args = append(args, dateRange.From)
		conds = append(conds, fmt.Sprintf("fecha_venta >= $%d", len(args)))
	}
	if dateRange.To != "" {
		args = append(args, dateRange.To)
		conds = append(conds, fmt.Sprintf("fecha_venta <= $%d", len(args)))
	}
	query := `SELECT id, fecha_venta::text, total_bob, created_at FROM sales`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY fecha_venta DESC, id DESC"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var sales []*entity.Sale
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		sales = append(sales, sale)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.loadItems(ctx, sales); err != nil {
		return nil, err
	}
	return sales, nil
}

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	if err := row.Scan(&s.ID, &s.SaleDate, &s.TotalAmount, &s.CreatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SaleRepo) loadItems(ctx context.Context, sales []*entity.Sale) error {
	if len(sales) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(sales))
	byID := make(map[int64]*entity.Sale, len(sales))
	for _, s := range sales {
		ids = append(ids, s.ID)
		byID[s.ID] = s
	}

	rows, err := r.q.Query(ctx,
		`SELECT id, sale_id, product_id, cantidad, precio_unitario_bob
		 FROM sale_items WHERE sale_id = ANY($1) ORDER BY id ASC`, ids)
	if err != nil {
		return fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.ID, &it.SaleID, &it.ProductID, &it.Quantity, &it.UnitPrice); err != nil {
			return fmt.Errorf("scan sale item: %w", err)
		}
		if sale, ok := byID[it.SaleID]; ok {
			sale.Items = append(sale.Items, it)
		}
	}
	return rows.Err()
}
