package shared

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the base interface for all repositories. Implementations
// scope every read to live (non-deleted) rows; Delete is always a soft
// delete.
type Repository[T any] interface {
	FindByID(ctx context.Context, id uuid.UUID) (*T, error)
	FindAll(ctx context.Context, criteria Criteria) ([]T, error)
	Save(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, criteria Criteria) (int64, error)
}
