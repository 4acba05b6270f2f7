package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

// MovementUseCase es el motor de movimientos: recepciones, ajustes manuales y
// administración de pools. Cada mutación actualiza el saldo y agrega el registro
// de auditoría en la misma transacción, con bloqueo de fila (SELECT FOR UPDATE).
type MovementUseCase struct {
	txRunner     TxRunner
	poolRepo     repository.StockPoolRepository
	inboundRepo  repository.InboundTransactionRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(
	txRunner TxRunner,
	poolRepo repository.StockPoolRepository,
	inboundRepo repository.InboundTransactionRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
) *MovementUseCase {
	return &MovementUseCase{
		txRunner:     txRunner,
		poolRepo:     poolRepo,
		inboundRepo:  inboundRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
	}
}

// Receive registra una recepción: crea el pool (cliente, producto) si no existe,
// suma la cantidad al saldo y agrega la entrada al historial, todo en una transacción.
// Sobre un pool existente, target/safety solo se sobreescriben si vienen en el request.
func (uc *MovementUseCase) Receive(ctx context.Context, in dto.ReceiveStockRequest) (*dto.StockPoolResponse, error) {
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

	remarks := in.Remarks
	if remarks == "" {
		remarks = entity.DefaultInboundRemarks
	}

	now := time.Now()
	var pool *entity.StockPool
	err = uc.txRunner.Run(ctx, func(
		poolRepo repository.StockPoolRepository,
		inboundRepo repository.InboundTransactionRepository,
	) error {
		var err error
		pool, err = poolRepo.GetForUpdate(in.CustomerID, in.ProductID)
		if err != nil {
			return err
		}
		if pool == nil {
			pool = &entity.StockPool{
				CustomerID: in.CustomerID,
				ProductID:  in.ProductID,
				Quantity:   in.Quantity,
				UpdatedAt:  now,
			}
			if in.TargetStock != nil {
				pool.TargetStock = *in.TargetStock
			}
			if in.SafetyStock != nil {
				pool.SafetyStock = *in.SafetyStock
			}
			if err := poolRepo.Create(pool); err != nil {
				return err
			}
		} else {
			pool.Quantity += in.Quantity
			if in.TargetStock != nil {
				pool.TargetStock = *in.TargetStock
			}
			if in.SafetyStock != nil {
				pool.SafetyStock = *in.SafetyStock
			}
			pool.UpdatedAt = now
			if err := poolRepo.Update(pool); err != nil {
				return err
			}
		}
		return inboundRepo.Create(&entity.InboundTransaction{
			CustomerID:  in.CustomerID,
			ProductID:   in.ProductID,
			Quantity:    in.Quantity,
			InboundDate: now,
			Remarks:     remarks,
		})
	})
	if err != nil {
		return nil, err
	}
	return dto.NewStockPoolResponse(&repository.StockPoolDetail{
		Pool:     *pool,
		Customer: *customer,
		Product:  *product,
	}), nil
}

// UpdateEntry actualiza un pool por ID con regla de merge parcial: campos ausentes
// no se tocan. Un cambio de cantidad fija el saldo directamente (el saldo es la
// fuente de verdad) y deja el diff como ajuste en el historial; NO se re-deriva
// del historial.
func (uc *MovementUseCase) UpdateEntry(ctx context.Context, id int64, in dto.UpdateStockPoolRequest) (*dto.StockPoolResponse, error) {
	if in.Quantity != nil && *in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	var pool *entity.StockPool
	err := uc.txRunner.Run(ctx, func(
		poolRepo repository.StockPoolRepository,
		inboundRepo repository.InboundTransactionRepository,
	) error {
		var err error
		pool, err = poolRepo.GetByIDForUpdate(id)
		if err != nil {
			return err
		}
		if pool == nil {
			return domain.ErrNotFound
		}
		if in.Quantity != nil {
			diff := *in.Quantity - pool.Quantity
			if diff != 0 {
				if err := inboundRepo.Create(&entity.InboundTransaction{
					CustomerID:  pool.CustomerID,
					ProductID:   pool.ProductID,
					Quantity:    diff,
					InboundDate: now,
					Remarks:     fmt.Sprintf("Manual Adjustment (Set Qty: %d -> %d)", pool.Quantity, *in.Quantity),
				}); err != nil {
					return err
				}
			}
			pool.Quantity = *in.Quantity
		}
		if in.TargetStock != nil {
			pool.TargetStock = *in.TargetStock
		}
		if in.SafetyStock != nil {
			pool.SafetyStock = *in.SafetyStock
		}
		pool.UpdatedAt = now
		return poolRepo.Update(pool)
	})
	if err != nil {
		return nil, err
	}
	return uc.detail(pool)
}

// DeleteEntry elimina el pool. El historial de entradas del par queda huérfano
// deliberadamente: las tablas de historial no llevan FK al pool.
func (uc *MovementUseCase) DeleteEntry(ctx context.Context, id int64) error {
	return uc.poolRepo.Delete(id)
}

// List devuelve todos los pools con cliente y producto resueltos.
func (uc *MovementUseCase) List(ctx context.Context) ([]*dto.StockPoolResponse, error) {
	details, err := uc.poolRepo.ListDetailed(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.StockPoolResponse, 0, len(details))
	for _, d := range details {
		out = append(out, dto.NewStockPoolResponse(d))
	}
	return out, nil
}

// History devuelve el historial de entradas, más reciente primero.
func (uc *MovementUseCase) History(ctx context.Context) ([]*dto.InboundResponse, error) {
	details, err := uc.inboundRepo.ListDetailed(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InboundResponse, 0, len(details))
	for _, d := range details {
		out = append(out, dto.NewInboundResponse(d))
	}
	return out, nil
}

func (uc *MovementUseCase) detail(pool *entity.StockPool) (*dto.StockPoolResponse, error) {
	customer, err := uc.customerRepo.GetByID(pool.CustomerID)
	if err != nil {
		return nil, err
	}
	product, err := uc.productRepo.GetByID(pool.ProductID)
	if err != nil {
		return nil, err
	}
	if customer == nil || product == nil {
		return nil, domain.ErrNotFound
	}
	return dto.NewStockPoolResponse(&repository.StockPoolDetail{
		Pool:     *pool,
		Customer: *customer,
		Product:  *product,
	}), nil
}
