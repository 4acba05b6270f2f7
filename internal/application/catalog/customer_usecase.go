package catalog

import (
	"time"

	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

// CustomerUseCase casos de uso CRUD para clientes.
type CustomerUseCase struct {
	repo     repository.CustomerRepository
	linkRepo repository.LinkRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, linkRepo repository.LinkRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, linkRepo: linkRepo}
}

// Create crea un nuevo cliente.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	customer := &entity.Customer{
		Name:        in.Name,
		ContactInfo: in.ContactInfo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	resp := dto.NewCustomerResponse(customer)
	return &resp, nil
}

// List lista clientes con sus productos asociados (catálogo por cliente).
func (uc *CustomerUseCase) List(limit, offset int) ([]*dto.CustomerWithProductsResponse, error) {
	if limit <= 0 {
		limit = 100
	}
	customers, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerWithProductsResponse, 0, len(customers))
	for _, c := range customers {
		linked, err := uc.linkRepo.ListProductsByCustomer(c.ID)
		if err != nil {
			return nil, err
		}
		products := make([]dto.ProductResponse, 0, len(linked))
		for _, p := range linked {
			products = append(products, dto.NewProductResponse(p))
		}
		out = append(out, &dto.CustomerWithProductsResponse{
			ID:          c.ID,
			Name:        c.Name,
			ContactInfo: c.ContactInfo,
			Products:    products,
		})
	}
	return out, nil
}

// Update actualiza nombre y datos de contacto.
func (uc *CustomerUseCase) Update(id int64, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	customer.Name = in.Name
	customer.ContactInfo = in.ContactInfo
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	resp := dto.NewCustomerResponse(customer)
	return &resp, nil
}

// Delete elimina un cliente por ID.
func (uc *CustomerUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}
