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

var _ repository.LotRepository = (*LotRepo)(nil)

// LotRepo adaptador PostgreSQL para lotes de compra y sus items.
type LotRepo struct {
	q Querier
}

func NewLotRepository(q Querier) *LotRepo {
	return &LotRepo{q: q}
}

// fecha es DATE en la tabla; el ::text evita el scan binario de pgx sobre
// un destino string.
const lotColumns = `id, nombre, fecha::text, descripcion, created_at`

func (r *LotRepo) Create(lot *entity.Lot) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO lots (nombre, fecha, descripcion, created_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		lot.Name, lot.Date, nullIfEmpty(lot.Description), lot.CreatedAt,
	).Scan(&lot.ID)
	if err != nil {
		return fmt.Errorf("insert lot: %w", err)
	}
	return nil
}

func (r *LotRepo) GetByID(id int64) (*entity.Lot, error) {
	lot, err := r.scanLotRow(r.q.QueryRow(context.Background(),
		`SELECT `+lotColumns+` FROM lots WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lot: %w", err)
	}
	if err := r.loadItems([]*entity.Lot{lot}); err != nil {
		return nil, err
	}
	return lot, nil
}

func (r *LotRepo) AddItem(item *entity.LotItem) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO lot_items (lot_id, product_id, cantidad, costo_unitario_bob, subtotal_bob)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		item.LotID, item.ProductID, item.Quantity, item.UnitCost, item.Subtotal,
	).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("insert lot item: %w", err)
	}
	return nil
}

// List devuelve lotes del rango, fecha descendente, con items cargados en
// una sola consulta adicional.
func (r *LotRepo) List(dateRange repository.DateRange) ([]*entity.Lot, error) {
	var conds []string
	var args []any
	if dateRange.From != "" {
		args = append(args, dateRange.From)
		conds = append(conds, fmt.Sprintf("fecha >= $%d", len(args)))
	}
	if dateRange.To != "" {
		args = append(args, dateRange.To)
		conds = append(conds, fmt.Sprintf("fecha <= $%d", len(args)))
	}
	query := `SELECT ` + lotColumns + ` FROM lots`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY fecha DESC, id DESC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list lots: %w", err)
	}
	defer rows.Close()

	var lots []*entity.Lot
	for rows.Next() {
		lot, err := r.scanLotRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lot: %w", err)
		}
		lots = append(lots, lot)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.loadItems(lots); err != nil {
		return nil, err
	}
	return lots, nil
}

func (r *LotRepo) scanLotRow(row pgx.Row) (*entity.Lot, error) {
	var lot entity.Lot
	var desc *string
	if err := row.Scan(&lot.ID, &lot.Name, &lot.Date, &desc, &lot.CreatedAt); err != nil {
		return nil, err
	}
	if desc != nil {
		lot.Description = *desc
	}
	return &lot, nil
}

func (r *LotRepo) loadItems(lots []*entity.Lot) error {
	if len(lots) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(lots))
	byID := make(map[int64]*entity.Lot, len(lots))
	for _, lot := range lots {
		ids = append(ids, lot.ID)
		byID[lot.ID] = lot
	}

	rows, err := r.q.Query(context.Background(),
		`SELECT id, lot_id, product_id, cantidad, costo_unitario_bob, subtotal_bob
		 FROM lot_items WHERE lot_id = ANY($1) ORDER BY id ASC`, ids)
	if err != nil {
		return fmt.Errorf("list lot items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var it entity.LotItem
		if err := rows.Scan(&it.ID, &it.LotID, &it.ProductID, &it.Quantity, &it.UnitCost, &it.Subtotal); err != nil {
			return fmt.Errorf("scan lot item: %w", err)
		}
		if lot, ok := byID[it.LotID]; ok {
			lot.Items = append(lot.Items, it)
		}
	}
	return rows.Err()
}
