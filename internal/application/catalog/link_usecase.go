package catalog

import (
	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

// LinkUseCase administra la asociación cliente↔producto del catálogo.
type LinkUseCase struct {
	linkRepo     repository.LinkRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
}

// NewLinkUseCase construye el caso de uso.
func NewLinkUseCase(
	linkRepo repository.LinkRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
) *LinkUseCase {
	return &LinkUseCase{linkRepo: linkRepo, customerRepo: customerRepo, productRepo: productRepo}
}

// Link asocia un producto al cliente. Idempotente: si ya existe no es error,
// created=false indica que no se insertó nada.
func (uc *LinkUseCase) Link(customerID, productID int64) (created bool, err error) {
	customer, err := uc.customerRepo.GetByID(customerID)
	if err != nil {
		return false, err
	}
	if customer == nil {
		return false, domain.ErrNotFound
	}
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return false, err
	}
	if product == nil {
		return false, domain.ErrNotFound
	}
	exists, err := uc.linkRepo.Exists(customerID, productID)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}
	if err := uc.linkRepo.Create(&entity.CustomerProductLink{CustomerID: customerID, ProductID: productID}); err != nil {
		return false, err
	}
	return true, nil
}

// Unlink elimina la asociación. ErrNotFound si no existe.
func (uc *LinkUseCase) Unlink(customerID, productID int64) error {
	return uc.linkRepo.Delete(customerID, productID)
}

// Products lista los productos asociados a un cliente.
func (uc *LinkUseCase) Products(customerID int64) ([]*dto.ProductResponse, error) {
	list, err := uc.linkRepo.ListProductsByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(list))
	for _, p := range list {
		resp := dto.NewProductResponse(p)
		out = append(out, &resp)
	}
	return out, nil
}
