package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

var _ repository.StockPoolRepository = (*StockPoolRepo)(nil)

// StockPoolRepo implementación de StockPoolRepository sobre PostgreSQL (usable con pool o tx).
type StockPoolRepo struct {
	q Querier
}

// NewStockPoolRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockPoolRepository(q Querier) *StockPoolRepo {
	return &StockPoolRepo{q: q}
}

const poolColumns = `id, customer_id, product_id, quantity, target_stock, safety_stock, updated_at`

func scanPool(row pgx.Row) (*entity.StockPool, error) {
	var p entity.StockPool
	err := row.Scan(&p.ID, &p.CustomerID, &p.ProductID, &p.Quantity, &p.TargetStock, &p.SafetyStock, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// GetByID obtiene un pool por ID. Devuelve nil si no existe.
func (r *StockPoolRepo) GetByID(id int64) (*entity.StockPool, error) {
	query := `SELECT ` + poolColumns + ` FROM stock_pools WHERE id = $1`
	p, err := scanPool(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get stock pool: %w", err)
	}
	return p, nil
}

// GetByOwnerAndProduct obtiene el pool por su clave (cliente, producto).
func (r *StockPoolRepo) GetByOwnerAndProduct(customerID, productID int64) (*entity.StockPool, error) {
	query := `SELECT ` + poolColumns + ` FROM stock_pools WHERE customer_id = $1 AND product_id = $2`
	p, err := scanPool(r.q.QueryRow(context.Background(), query, customerID, productID))
	if err != nil {
		return nil, fmt.Errorf("get stock pool by owner: %w", err)
	}
	return p, nil
}

// GetForUpdate obtiene el pool por clave y bloquea la fila (SELECT FOR UPDATE).
func (r *StockPoolRepo) GetForUpdate(customerID, productID int64) (*entity.StockPool, error) {
	query := `SELECT ` + poolColumns + ` FROM stock_pools WHERE customer_id = $1 AND product_id = $2 FOR UPDATE`
	p, err := scanPool(r.q.QueryRow(context.Background(), query, customerID, productID))
	if err != nil {
		return nil, fmt.Errorf("get stock pool for update: %w", err)
	}
	return p, nil
}

// GetByIDForUpdate obtiene el pool por ID y bloquea la fila (SELECT FOR UPDATE).
func (r *StockPoolRepo) GetByIDForUpdate(id int64) (*entity.StockPool, error) {
	query := `SELECT ` + poolColumns + ` FROM stock_pools WHERE id = $1 FOR UPDATE`
	p, err := scanPool(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get stock pool by id for update: %w", err)
	}
	return p, nil
}

// Create inserta un pool nuevo y asigna el ID generado.
func (r *StockPoolRepo) Create(pool *entity.StockPool) error {
	query := `
		INSERT INTO stock_pools (customer_id, product_id, quantity, target_stock, safety_stock, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		pool.CustomerID, pool.ProductID, pool.Quantity, pool.TargetStock, pool.SafetyStock, pool.UpdatedAt,
	).Scan(&pool.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert stock pool: %w", err)
	}
	return nil
}

// Update persiste saldo y umbrales del pool.
func (r *StockPoolRepo) Update(pool *entity.StockPool) error {
	query := `
		UPDATE stock_pools
		SET quantity = $2, target_stock = $3, safety_stock = $4, updated_at = $5
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		pool.ID, pool.Quantity, pool.TargetStock, pool.SafetyStock, pool.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update stock pool: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el pool. El historial del par (cliente, producto) queda huérfano.
func (r *StockPoolRepo) Delete(id int64) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM stock_pools WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock pool: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListDetailed devuelve todos los pools con cliente y producto resueltos.
func (r *StockPoolRepo) ListDetailed(ctx context.Context) ([]*repository.StockPoolDetail, error) {
	query := `
		SELECT sp.id, sp.customer_id, sp.product_id, sp.quantity, sp.target_stock, sp.safety_stock, sp.updated_at,
		       c.id, c.name, c.contact_info,
		       p.id, p.sku_code, p.name, p.description, p.created_at, p.updated_at
		FROM stock_pools sp
		JOIN customers c ON c.id = sp.customer_id
		JOIN products p ON p.id = sp.product_id
		ORDER BY sp.updated_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list stock pools: %w", err)
	}
	defer rows.Close()
	var list []*repository.StockPoolDetail
	for rows.Next() {
		var d repository.StockPoolDetail
		if err := rows.Scan(
			&d.Pool.ID, &d.Pool.CustomerID, &d.Pool.ProductID, &d.Pool.Quantity,
			&d.Pool.TargetStock, &d.Pool.SafetyStock, &d.Pool.UpdatedAt,
			&d.Customer.ID, &d.Customer.Name, &d.Customer.ContactInfo,
			&d.Product.ID, &d.Product.SKUCode, &d.Product.Name, &d.Product.Description,
			&d.Product.CreatedAt, &d.Product.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan stock pool detail: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
