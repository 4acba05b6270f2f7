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

var _ repository.ShipmentRepository = (*ShipmentRepo)(nil)

// ShipmentRepo implementación de ShipmentRepository sobre PostgreSQL (usable con pool o tx).
type ShipmentRepo struct {
	q Querier
}

// NewShipmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewShipmentRepository(q Querier) *ShipmentRepo {
	return &ShipmentRepo{q: q}
}

// Create persiste un despacho y asigna el ID generado.
func (r *ShipmentRepo) Create(shipment *entity.Shipment) error {
	query := `
		INSERT INTO shipments (customer_id, product_id, quantity, shipment_date, rma_ticket, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		shipment.CustomerID, shipment.ProductID, shipment.Quantity,
		shipment.ShipmentDate, shipment.RMATicket, shipment.CreatedAt,
	).Scan(&shipment.ID)
	if err != nil {
		return fmt.Errorf("insert shipment: %w", err)
	}
	return nil
}

// GetByID obtiene un despacho por ID. Devuelve nil si no existe.
func (r *ShipmentRepo) GetByID(id int64) (*entity.Shipment, error) {
	query := `
		SELECT id, customer_id, product_id, quantity, shipment_date, rma_ticket, created_at
		FROM shipments WHERE id = $1`
	var s entity.Shipment
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.CustomerID, &s.ProductID, &s.Quantity, &s.ShipmentDate, &s.RMATicket, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shipment: %w", err)
	}
	return &s, nil
}

// Update persiste cantidad, fecha y ticket del despacho.
func (r *ShipmentRepo) Update(shipment *entity.Shipment) error {
	query := `
		UPDATE shipments SET quantity = $2, shipment_date = $3, rma_ticket = $4
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		shipment.ID, shipment.Quantity, shipment.ShipmentDate, shipment.RMATicket,
	)
	if err != nil {
		return fmt.Errorf("update shipment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un despacho por ID.
func (r *ShipmentRepo) Delete(id int64) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM shipments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete shipment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListDetailed devuelve los despachos con cliente y producto resueltos, más reciente primero.
func (r *ShipmentRepo) ListDetailed(ctx context.Context) ([]*repository.ShipmentDetail, error) {
	query := `
		SELECT s.id, s.customer_id, s.product_id, s.quantity, s.shipment_date, s.rma_ticket, s.created_at,
		       c.id, c.name, c.contact_info,
		       p.id, p.sku_code, p.name, p.description, p.created_at, p.updated_at
		FROM shipments s
		JOIN customers c ON c.id = s.customer_id
		JOIN products p ON p.id = s.product_id
		ORDER BY s.created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list shipments: %w", err)
	}
	defer rows.Close()
	var list []*repository.ShipmentDetail
	for rows.Next() {
		var d repository.ShipmentDetail
		if err := rows.Scan(
			&d.Shipment.ID, &d.Shipment.CustomerID, &d.Shipment.ProductID, &d.Shipment.Quantity,
			&d.Shipment.ShipmentDate, &d.Shipment.RMATicket, &d.Shipment.CreatedAt,
			&d.Customer.ID, &d.Customer.Name, &d.Customer.ContactInfo,
			&d.Product.ID, &d.Product.SKUCode, &d.Product.Name, &d.Product.Description,
			&d.Product.CreatedAt, &d.Product.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan shipment detail: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
