package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

var _ repository.InboundTransactionRepository = (*InboundTransactionRepo)(nil)

// InboundTransactionRepo implementación sobre PostgreSQL (usable con pool o tx).
// El historial es append-only: solo INSERT y lectura.
type InboundTransactionRepo struct {
	q Querier
}

// NewInboundTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInboundTransactionRepository(q Querier) *InboundTransactionRepo {
	return &InboundTransactionRepo{q: q}
}

// Create persiste una entrada del historial y asigna el ID generado.
func (r *InboundTransactionRepo) Create(tx *entity.InboundTransaction) error {
	query := `
		INSERT INTO inbound_transactions (customer_id, product_id, quantity, inbound_date, remarks)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		tx.CustomerID, tx.ProductID, tx.Quantity, tx.InboundDate, tx.Remarks,
	).Scan(&tx.ID)
	if err != nil {
		return fmt.Errorf("insert inbound transaction: %w", err)
	}
	return nil
}

// ListDetailed devuelve el historial completo con cliente y producto resueltos,
// más reciente primero.
func (r *InboundTransactionRepo) ListDetailed(ctx context.Context) ([]*repository.InboundDetail, error) {
	query := `
		SELECT it.id, it.customer_id, it.product_id, it.quantity, it.inbound_date, it.remarks,
		       c.id, c.name, c.contact_info,
		       p.id, p.sku_code, p.name, p.description, p.created_at, p.updated_at
		FROM inbound_transactions it
		JOIN customers c ON c.id = it.customer_id
		JOIN products p ON p.id = it.product_id
		ORDER BY it.inbound_date DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list inbound transactions: %w", err)
	}
	defer rows.Close()
	var list []*repository.InboundDetail
	for rows.Next() {
		var d repository.InboundDetail
		if err := rows.Scan(
			&d.Transaction.ID, &d.Transaction.CustomerID, &d.Transaction.ProductID,
			&d.Transaction.Quantity, &d.Transaction.InboundDate, &d.Transaction.Remarks,
			&d.Customer.ID, &d.Customer.Name, &d.Customer.ContactInfo,
			&d.Product.ID, &d.Product.SKUCode, &d.Product.Name, &d.Product.Description,
			&d.Product.CreatedAt, &d.Product.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan inbound detail: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
