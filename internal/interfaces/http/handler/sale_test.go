package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	salesapp "github.com/stockdesk/backend/internal/application/sales"
	"github.com/stockdesk/backend/internal/domain/catalog"
	"github.com/stockdesk/backend/internal/domain/inventory"
	"github.com/stockdesk/backend/internal/domain/sales"
	"github.com/stockdesk/backend/internal/infrastructure/persistence"
)

func setupSaleHandler(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db := setupTestDB(t)
	svc := salesapp.NewSaleService(
		persistence.NewGormSaleRepository(db),
		persistence.NewGormSaleTransactionScope(db),
	)
	return newTestEngine(NewSaleHandler(svc)), db
}

func TestSaleHandler_Register(t *testing.T) {
	engine, db := setupSaleHandler(t)
	keyboard := createTestProduct(t, db, "Teclado", 90, 10)
	mouse := createTestProduct(t, db, "Mouse", 40, 5)

	t.Run("registers a sale atomically", func(t *testing.T) {
		w := performRequest(t, engine, http.MethodPost, "/api/v1/sales", gin.H{
			"items": []gin.H{
				{"product_id": keyboard.ID.String(), "quantity": 2},
				{"product_id": mouse.ID.String(), "quantity": 1},
			},
		})
		require.Equal(t, http.StatusCreated, w.Code)

		env := decodeEnvelope(t, w)
		var sale salesapp.SaleDTO
		require.NoError(t, json.Unmarshal(env.Data, &sale))
		assert.True(t, sale.Total.Equal(decimal.NewFromInt(220)))
		assert.Len(t, sale.Items, 2)

		var reloaded catalog.Product
		require.NoError(t, db.First(&reloaded, "id = ?", keyboard.ID).Error)
		assert.Equal(t, 8, reloaded.Stock)

		var movementCount int64
		require.NoError(t, db.Model(&inventory.StockMovement{}).Count(&movementCount).Error)
		assert.EqualValues(t, 2, movementCount)
	})

	t.Run("insufficient stock rejects the whole sale", func(t *testing.T) {
		scarce := createTestProduct(t, db, "Escasso", 10, 1)

		var salesBefore int64
		require.NoError(t, db.Model(&sales.Sale{}).Count(&salesBefore).Error)

		w := performRequest(t, engine, http.MethodPost, "/api/v1/sales", gin.H{
			"items": []gin.H{
				{"product_id": mouse.ID.String(), "quantity": 1},
				{"product_id": scarce.ID.String(), "quantity": 2},
			},
		})
		requireErrorCode(t, w, http.StatusBadRequest, "INSUFFICIENT_STOCK")

		var salesAfter int64
		require.NoError(t, db.Model(&sales.Sale{}).Count(&salesAfter).Error)
		assert.Equal(t, salesBefore, salesAfter)
	})

	t.Run("empty item list is rejected by binding", func(t *testing.T) {
		w := performRequest(t, engine, http.MethodPost, "/api/v1/sales", gin.H{
			"items": []gin.H{},
		})
		requireErrorCode(t, w, http.StatusBadRequest, "ERR_BAD_REQUEST")
	})
}

func TestSaleHandler_List(t *testing.T) {
	engine, db := setupSaleHandler(t)
	product := createTestProduct(t, db, "Caderno", 12, 30)

	for i := 0; i < 3; i++ {
		w := performRequest(t, engine, http.MethodPost, "/api/v1/sales", gin.H{
			"items": []gin.H{{"product_id": product.ID.String(), "quantity": 1}},
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := performRequest(t, engine, http.MethodGet, "/api/v1/sales?limit=2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	require.NotNil(t, env.Meta)
	assert.EqualValues(t, 3, env.Meta.TotalItems)
	assert.Equal(t, 2, env.Meta.TotalPages)
}
