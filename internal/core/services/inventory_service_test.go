package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/SahajKhata/sahaj_khata_app/internal/apperrors"
	"github.com/SahajKhata/sahaj_khata_app/internal/core/domain"
	"github.com/SahajKhata/sahaj_khata_app/internal/core/services"
)

type InventoryServiceTestSuite struct {
	suite.Suite
	ledger  *services.LedgerService
	service *services.InventoryService
}

func (suite *InventoryServiceTestSuite) SetupTest() {
	suite.ledger = newTestLedger(suite.T())
	suite.service = services.NewInventoryService(suite.ledger)
}

func (suite *InventoryServiceTestSuite) TestUpsertItem_CreateAndReplace() {
	created, err := suite.service.UpsertItem(context.Background(), domain.InventoryItem{
		Name:         "Widget",
		PurchaseCost: decimal.NewFromInt(50),
		SalesPrice:   decimal.NewFromInt(80),
		Quantity:     decimal.NewFromInt(10),
	})
	require.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), created.ItemID)

	replaced, err := suite.service.UpsertItem(context.Background(), domain.InventoryItem{
		Name:         "Widget",
		PurchaseCost: decimal.NewFromInt(55),
		SalesPrice:   decimal.NewFromInt(90),
		Quantity:     decimal.NewFromInt(12),
	})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), created.ItemID, replaced.ItemID)

	items, err := suite.service.ListItems(context.Background())
	require.NoError(suite.T(), err)
	require.Len(suite.T(), items, 1)
	assert.True(suite.T(), items[0].PurchaseCost.Equal(decimal.NewFromInt(55)))
	assert.True(suite.T(), items[0].Quantity.Equal(decimal.NewFromInt(12)))
}

func (suite *InventoryServiceTestSuite) TestUpsertItem_MissingName() {
	_, err := suite.service.UpsertItem(context.Background(), domain.InventoryItem{})
	assert.ErrorIs(suite.T(), err, apperrors.ErrMissingField)
}

func (suite *InventoryServiceTestSuite) TestAdjustQuantity() {
	_, err := suite.service.UpsertItem(context.Background(), domain.InventoryItem{
		Name:     "Widget",
		Quantity: decimal.NewFromInt(10),
	})
	require.NoError(suite.T(), err)

	require.NoError(suite.T(), suite.service.AdjustQuantity(context.Background(), "Widget", decimal.NewFromInt(-4)))

	items, err := suite.service.ListItems(context.Background())
	require.NoError(suite.T(), err)
	require.Len(suite.T(), items, 1)
	assert.True(suite.T(), items[0].Quantity.Equal(decimal.NewFromInt(6)))
}

func (suite *InventoryServiceTestSuite) TestAdjustQuantity_UnknownItemIgnored() {
	err := suite.service.AdjustQuantity(context.Background(), "Nonexistent", decimal.NewFromInt(-1))
	assert.NoError(suite.T(), err)
}

func TestInventoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InventoryServiceTestSuite))
}
