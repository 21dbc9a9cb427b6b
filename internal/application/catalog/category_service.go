package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/stockdesk/backend/internal/domain/catalog"
	"github.com/stockdesk/backend/internal/domain/shared"
)

// CategoryService handles catalog operations on categories
type CategoryService struct {
	categories catalog.CategoryRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categories catalog.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

// Create creates a new category
func (s *CategoryService) Create(ctx context.Context, input CreateCategoryInput) (*CategoryDTO, error) {
	exists, err := s.categories.ExistsByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("CATEGORY_ALREADY_EXISTS", "A category with this name already exists")
	}

	category, err := catalog.NewCategory(input.Name, input.Description)
	if err != nil {
		return nil, err
	}
	if err := s.categories.Save(ctx, category); err != nil {
		return nil, err
	}
	return NewCategoryDTO(category), nil
}

// GetByID returns a category by its ID
func (s *CategoryService) GetByID(ctx context.Context, id uuid.UUID) (*CategoryDTO, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewCategoryDTO(category), nil
}

// List returns a page of categories matching the query
func (s *CategoryService) List(ctx context.Context, query shared.ListQuery) ([]CategoryDTO, *shared.Pagination, error) {
	criteria, err := shared.BuildCriteria(query)
	if err != nil {
		return nil, nil, err
	}

	categories, err := s.categories.FindAll(ctx, criteria)
	if err != nil {
		return nil, nil, err
	}
	total, err := s.categories.Count(ctx, criteria)
	if err != nil {
		return nil, nil, err
	}

	dtos := make([]CategoryDTO, len(categories))
	for i := range categories {
		dtos[i] = *NewCategoryDTO(&categories[i])
	}
	pagination := shared.NewPagination(total, criteria.Page, criteria.PageSize)
	return dtos, &pagination, nil
}

// Update updates a category
func (s *CategoryService) Update(ctx context.Context, id uuid.UUID, input UpdateCategoryInput) (*CategoryDTO, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := category.Update(input.Name, input.Description); err != nil {
		return nil, err
	}
	if err := s.categories.Save(ctx, category); err != nil {
		return nil, err
	}
	return NewCategoryDTO(category), nil
}

// Delete soft-deletes a category. Products keep their category reference.
func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.categories.Delete(ctx, id)
}
