package shipping

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

// ShipmentUseCase orquesta despachos y sus reversiones. El origen del stock puede
// ser un cliente distinto al facturado (stock_source_customer_id); ese origen
// decide qué pool se descuenta pero NO se persiste en el despacho, así que las
// reversiones (editar/eliminar) siempre reponen el pool del cliente facturado.
type ShipmentUseCase struct {
	txRunner     TxRunner
	shipmentRepo repository.ShipmentRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
}

// NewShipmentUseCase construye el caso de uso.
func NewShipmentUseCase(
	txRunner TxRunner,
	shipmentRepo repository.ShipmentRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
) *ShipmentUseCase {
	return &ShipmentUseCase{
		txRunner:     txRunner,
		shipmentRepo: shipmentRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
	}
}

// Ship despacha un producto: bloquea el pool de origen, verifica suficiencia,
// descuenta y crea el despacho, todo en una transacción.
func (uc *ShipmentUseCase) Ship(ctx context.Context, in dto.CreateShipmentRequest) (*dto.ShipmentResponse, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("cliente %d: %w", in.CustomerID, domain.ErrNotFound)
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("producto %d: %w", in.ProductID, domain.ErrNotFound)
	}

	sourceID := in.CustomerID
	if in.StockSourceCustomerID != nil {
		sourceID = *in.StockSourceCustomerID
	}

	now := time.Now()
	shipment := &entity.Shipment{
		CustomerID:   in.CustomerID,
		ProductID:    in.ProductID,
		Quantity:     in.Quantity,
		ShipmentDate: in.ShipmentDate,
		RMATicket:    in.RMATicket,
		CreatedAt:    now,
	}
	err = uc.txRunner.RunShipping(ctx, func(
		poolRepo repository.StockPoolRepository,
		shipmentRepo repository.ShipmentRepository,
	) error {
		if err := debit(poolRepo, sourceID, in.ProductID, in.Quantity, now); err != nil {
			return err
		}
		return shipmentRepo.Create(shipment)
	})
	if err != nil {
		return nil, err
	}
	return dto.NewShipmentResponse(&repository.ShipmentDetail{
		Shipment: *shipment,
		Customer: *customer,
		Product:  *product,
	}), nil
}

// ShipBatch despacha varias líneas en una sola transacción. Cada ítem resuelve su
// propio origen (por defecto el facturado); las líneas de un lote pueden descontar
// de pools distintos. Se validan en orden de entrada y el primer ítem que falla
// rechaza el lote entero: ningún pool ni despacho queda persistido.
func (uc *ShipmentUseCase) ShipBatch(ctx context.Context, in dto.BatchShipmentRequest) ([]*dto.ShipmentResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("cliente %d: %w", in.CustomerID, domain.ErrNotFound)
	}
	products := make(map[int64]*entity.Product, len(in.Items))
	for _, item := range in.Items {
		if item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		if _, ok := products[item.ProductID]; ok {
			continue
		}
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, fmt.Errorf("producto %d: %w", item.ProductID, domain.ErrNotFound)
		}
		products[item.ProductID] = product
	}

	now := time.Now()
	shipments := make([]*entity.Shipment, 0, len(in.Items))
	err = uc.txRunner.RunShipping(ctx, func(
		poolRepo repository.StockPoolRepository,
		shipmentRepo repository.ShipmentRepository,
	) error {
		for _, item := range in.Items {
			sourceID := in.CustomerID
			if item.StockSourceCustomerID != nil {
				sourceID = *item.StockSourceCustomerID
			}
			if err := debit(poolRepo, sourceID, item.ProductID, item.Quantity, now); err != nil {
				return fmt.Errorf("producto %d (origen %d): %w", item.ProductID, sourceID, err)
			}
			shipment := &entity.Shipment{
				CustomerID:   in.CustomerID,
				ProductID:    item.ProductID,
				Quantity:     item.Quantity,
				ShipmentDate: in.ShipmentDate,
				RMATicket:    in.RMATicket,
				CreatedAt:    now,
			}
			if err := shipmentRepo.Create(shipment); err != nil {
				return err
			}
			shipments = append(shipments, shipment)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ShipmentResponse, 0, len(shipments))
	for _, s := range shipments {
		out = append(out, dto.NewShipmentResponse(&repository.ShipmentDetail{
			Shipment: *s,
			Customer: *customer,
			Product:  *products[s.ProductID],
		}))
	}
	return out, nil
}

// UpdateShipment edita un despacho con merge parcial. Un cambio de cantidad ajusta
// el pool del cliente FACTURADO (no necesariamente el pool de origen usado al
// crearlo): si sube, se re-verifica suficiencia por el diff; si baja, se repone.
// Fecha y ticket se actualizan sin efecto sobre el stock.
func (uc *ShipmentUseCase) UpdateShipment(ctx context.Context, id int64, in dto.UpdateShipmentRequest) (*dto.ShipmentResponse, error) {
	if in.Quantity != nil && *in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	var shipment *entity.Shipment
	err := uc.txRunner.RunShipping(ctx, func(
		poolRepo repository.StockPoolRepository,
		shipmentRepo repository.ShipmentRepository,
	) error {
		var err error
		shipment, err = shipmentRepo.GetByID(id)
		if err != nil {
			return err
		}
		if shipment == nil {
			return domain.ErrNotFound
		}
		if in.Quantity != nil && *in.Quantity != shipment.Quantity {
			diff := *in.Quantity - shipment.Quantity
			pool, err := poolRepo.GetForUpdate(shipment.CustomerID, shipment.ProductID)
			if err != nil {
				return err
			}
			if pool == nil {
				return fmt.Errorf("pool del facturado %d: %w", shipment.CustomerID, domain.ErrNotFound)
			}
			if diff > 0 && pool.Quantity < diff {
				return &domain.InsufficientStockError{Current: pool.Quantity}
			}
			pool.Quantity -= diff
			pool.UpdatedAt = now
			if err := poolRepo.Update(pool); err != nil {
				return err
			}
			shipment.Quantity = *in.Quantity
		}
		if in.ShipmentDate != nil {
			shipment.ShipmentDate = *in.ShipmentDate
		}
		if in.RMATicket != nil {
			shipment.RMATicket = *in.RMATicket
		}
		return shipmentRepo.Update(shipment)
	})
	if err != nil {
		return nil, err
	}
	return uc.detail(shipment)
}

// DeleteShipment elimina el despacho y repone su cantidad en el pool del cliente
// facturado. Si ese pool ya no existe, la reposición se omite en silencio
// (caso documentado) y el despacho se elimina igual.
func (uc *ShipmentUseCase) DeleteShipment(ctx context.Context, id int64) error {
	now := time.Now()
	return uc.txRunner.RunShipping(ctx, func(
		poolRepo repository.StockPoolRepository,
		shipmentRepo repository.ShipmentRepository,
	) error {
		shipment, err := shipmentRepo.GetByID(id)
		if err != nil {
			return err
		}
		if shipment == nil {
			return domain.ErrNotFound
		}
		pool, err := poolRepo.GetForUpdate(shipment.CustomerID, shipment.ProductID)
		if err != nil {
			return err
		}
		if pool != nil {
			pool.Quantity += shipment.Quantity
			pool.UpdatedAt = now
			if err := poolRepo.Update(pool); err != nil {
				return err
			}
		}
		return shipmentRepo.Delete(id)
	})
}

// List devuelve los despachos, más reciente primero.
func (uc *ShipmentUseCase) List(ctx context.Context) ([]*dto.ShipmentResponse, error) {
	details, err := uc.shipmentRepo.ListDetailed(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ShipmentResponse, 0, len(details))
	for _, d := range details {
		out = append(out, dto.NewShipmentResponse(d))
	}
	return out, nil
}

// debit bloquea el pool (origen, producto), verifica suficiencia y descuenta.
func debit(poolRepo repository.StockPoolRepository, sourceID, productID, quantity int64, now time.Time) error {
	pool, err := poolRepo.GetForUpdate(sourceID, productID)
	if err != nil {
		return err
	}
	if pool == nil {
		return domain.ErrNotFound
	}
	if pool.Quantity < quantity {
		return &domain.InsufficientStockError{Current: pool.Quantity}
	}
	pool.Quantity -= quantity
	pool.UpdatedAt = now
	return poolRepo.Update(pool)
}

func (uc *ShipmentUseCase) detail(shipment *entity.Shipment) (*dto.ShipmentResponse, error) {
	customer, err := uc.customerRepo.GetByID(shipment.CustomerID)
	if err != nil {
		return nil, err
	}
	product, err := uc.productRepo.GetByID(shipment.ProductID)
	if err != nil {
		return nil, err
	}
	if customer == nil || product == nil {
		return nil, domain.ErrNotFound
	}
	return dto.NewShipmentResponse(&repository.ShipmentDetail{
		Shipment: *shipment,
		Customer: *customer,
		Product:  *product,
	}), nil
}
