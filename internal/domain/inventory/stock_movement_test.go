package inventory

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStockMovement(t *testing.T) {
	productID := uuid.New()

	m, err := NewStockMovement(productID, MovementTypeIncrease, 5)
	require.NoError(t, err)
	assert.Equal(t, productID, m.ProductID)
	assert.Equal(t, MovementTypeIncrease, m.Type)
	assert.Equal(t, 5, m.Quantity)
}

func TestNewStockMovement_Invalid(t *testing.T) {
	productID := uuid.New()

	_, err := NewStockMovement(productID, MovementType("transfer"), 5)
	require.Error(t, err)

	_, err = NewStockMovement(productID, MovementTypeDecrease, 0)
	require.Error(t, err)

	_, err = NewStockMovement(productID, MovementTypeDecrease, -2)
	require.Error(t, err)
}
