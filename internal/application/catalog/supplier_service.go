package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/stockdesk/backend/internal/domain/catalog"
	"github.com/stockdesk/backend/internal/domain/shared"
)

// SupplierService handles catalog operations on suppliers
type SupplierService struct {
	suppliers catalog.SupplierRepository
}

// NewSupplierService creates a new SupplierService
func NewSupplierService(suppliers catalog.SupplierRepository) *SupplierService {
	return &SupplierService{suppliers: suppliers}
}

// Create creates a new supplier
func (s *SupplierService) Create(ctx context.Context, input CreateSupplierInput) (*SupplierDTO, error) {
	exists, err := s.suppliers.ExistsByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("SUPPLIER_ALREADY_EXISTS", "A supplier with this name already exists")
	}

	supplier, err := catalog.NewSupplier(input.Name, input.Email, input.Phone)
	if err != nil {
		return nil, err
	}
	if err := s.suppliers.Save(ctx, supplier); err != nil {
		return nil, err
	}
	return NewSupplierDTO(supplier), nil
}

// GetByID returns a supplier by its ID
func (s *SupplierService) GetByID(ctx context.Context, id uuid.UUID) (*SupplierDTO, error) {
	supplier, err := s.suppliers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewSupplierDTO(supplier), nil
}

// List returns a page of suppliers matching the query
func (s *SupplierService) List(ctx context.Context, query shared.ListQuery) ([]SupplierDTO, *shared.Pagination, error) {
	criteria, err := shared.BuildCriteria(query)
	if err != nil {
		return nil, nil, err
	}

	suppliers, err := s.suppliers.FindAll(ctx, criteria)
	if err != nil {
		return nil, nil, err
	}
	total, err := s.suppliers.Count(ctx, criteria)
	if err != nil {
		return nil, nil, err
	}

	dtos := make([]SupplierDTO, len(suppliers))
	for i := range suppliers {
		dtos[i] = *NewSupplierDTO(&suppliers[i])
	}
	pagination := shared.NewPagination(total, criteria.Page, criteria.PageSize)
	return dtos, &pagination, nil
}

// Update updates a supplier
func (s *SupplierService) Update(ctx context.Context, id uuid.UUID, input UpdateSupplierInput) (*SupplierDTO, error) {
	supplier, err := s.suppliers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := supplier.Update(input.Name, input.Email, input.Phone); err != nil {
		return nil, err
	}
	if err := s.suppliers.Save(ctx, supplier); err != nil {
		return nil, err
	}
	return NewSupplierDTO(supplier), nil
}

// Delete soft-deletes a supplier. Products keep their supplier reference.
func (s *SupplierService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.suppliers.Delete(ctx, id)
}
