package inventory

import (
	"context"

	"github.com/stockdesk/backend/internal/domain/catalog"
	"github.com/stockdesk/backend/internal/domain/inventory"
)

// TransactionScope provides transactional access to the repositories a stock
// movement touches. The stock adjustment and its ledger entry must commit or
// roll back together.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the repositories within a
// transaction. All repositories share the same underlying transaction.
type TransactionalRepositories interface {
	// Products returns the product repository scoped to the current transaction
	Products() catalog.ProductRepository
	// Movements returns the movement repository scoped to the current transaction
	Movements() inventory.StockMovementRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. Useful for testing.
type NoOpTransactionScope struct {
	products  catalog.ProductRepository
	movements inventory.StockMovementRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope over the given repositories
func NewNoOpTransactionScope(
	products catalog.ProductRepository,
	movements inventory.StockMovementRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{products: products, movements: movements}
}

// Execute runs the function without a real transaction
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// Products returns the product repository
func (s *NoOpTransactionScope) Products() catalog.ProductRepository {
	return s.products
}

// Movements returns the movement repository
func (s *NoOpTransactionScope) Movements() inventory.StockMovementRepository {
	return s.movements
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
