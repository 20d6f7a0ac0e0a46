package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/perfumanager/pos-api/internal/domain"
	"github.com/perfumanager/pos-api/internal/domain/entity"
	"github.com/perfumanager/pos-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, nombre, brand_id, precio_compra, precio_venta, cantidad, activo, image_url, created_at, updated_at`

// Create persiste un producto nuevo y asigna su ID.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (nombre, brand_id, precio_compra, precio_venta, cantidad, activo, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		product.Name, product.BrandID, product.PurchaseCost, product.SalePrice,
		product.Stock, product.Active, nullIfEmpty(product.ImageURL),
		product.CreatedAt, product.UpdatedAt,
	).Scan(&product.ID)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID; nil si no existe.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// Update actualiza todos los campos editables del producto.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET nombre = $2, brand_id = $3, precio_compra = $4, precio_venta = $5,
		    cantidad = $6, activo = $7, image_url = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.BrandID, product.PurchaseCost,
		product.SalePrice, product.Stock, product.Active,
		nullIfEmpty(product.ImageURL), product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateCost actualiza solo el costo de compra (ingreso de lotes).
func (r *ProductRepo) UpdateCost(productID int64, cost decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET precio_compra = $2, updated_at = now() WHERE id = $1`,
		productID, cost,
	)
	if err != nil {
		return fmt.Errorf("update product cost: %w", err)
	}
	return nil
}

// AddStock incrementa el stock en qty.
func (r *ProductRepo) AddStock(productID int64, qty int) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET cantidad = cantidad + $2, updated_at = now() WHERE id = $1`,
		productID, qty,
	)
	if err != nil {
		return fmt.Errorf("add stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeductStock descuenta qty unidades con guardia de stock en la misma
// sentencia: nunca deja cantidad negativa.
func (r *ProductRepo) DeductStock(productID int64, qty int) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET cantidad = cantidad - $2, updated_at = now()
		 WHERE id = $1 AND cantidad >= $2`,
		productID, qty,
	)
	if err != nil {
		return fmt.Errorf("deduct stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		existing, err := r.GetByID(productID)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}
		return domain.ErrInsufficientStock
	}
	return nil
}

// List lista productos con filtros opcionales, nombre ascendente.
func (r *ProductRepo) List(filter repository.ProductFilter) ([]*entity.Product, error) {
	var conds []string
	var args []any
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		conds = append(conds, fmt.Sprintf("nombre ILIKE $%d", len(args)))
	}
	if filter.OnlyActive {
		conds = append(conds, "activo = true")
	}
	query := `SELECT ` + productColumns + ` FROM products`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY nombre ASC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var imageURL *string
	if err := row.Scan(&p.ID, &p.Name, &p.BrandID, &p.PurchaseCost, &p.SalePrice,
		&p.Stock, &p.Active, &imageURL, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	if imageURL != nil {
		p.ImageURL = *imageURL
	}
	return &p, nil
}
