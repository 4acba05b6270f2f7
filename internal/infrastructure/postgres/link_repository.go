package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

var _ repository.LinkRepository = (*LinkRepo)(nil)

// LinkRepo implementación de LinkRepository (usable con pool o tx).
type LinkRepo struct {
	q Querier
}

// NewLinkRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLinkRepository(q Querier) *LinkRepo {
	return &LinkRepo{q: q}
}

// Create inserta la asociación cliente↔producto. ErrDuplicate si ya existe.
func (r *LinkRepo) Create(link *entity.CustomerProductLink) error {
	query := `INSERT INTO customer_product_links (customer_id, product_id) VALUES ($1, $2)`
	_, err := r.q.Exec(context.Background(), query, link.CustomerID, link.ProductID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert link: %w", err)
	}
	return nil
}

// Exists verifica si la asociación existe.
func (r *LinkRepo) Exists(customerID, productID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM customer_product_links WHERE customer_id = $1 AND product_id = $2)`
	var exists bool
	if err := r.q.QueryRow(context.Background(), query, customerID, productID).Scan(&exists); err != nil {
		return false, fmt.Errorf("link exists: %w", err)
	}
	return exists, nil
}

// Delete elimina la asociación. ErrNotFound si no existe.
func (r *LinkRepo) Delete(customerID, productID int64) error {
	query := `DELETE FROM customer_product_links WHERE customer_id = $1 AND product_id = $2`
	tag, err := r.q.Exec(context.Background(), query, customerID, productID)
	if err != nil {
		return fmt.Errorf("delete link: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListProductsByCustomer lista los productos asociados a un cliente.
func (r *LinkRepo) ListProductsByCustomer(customerID int64) ([]*entity.Product, error) {
	query := `
		SELECT p.id, p.sku_code, p.name, p.description, p.created_at, p.updated_at
		FROM products p
		JOIN customer_product_links l ON l.product_id = p.id
		WHERE l.customer_id = $1
		ORDER BY p.id`
	rows, err := r.q.Query(context.Background(), query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list linked products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.SKUCode, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan linked product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
