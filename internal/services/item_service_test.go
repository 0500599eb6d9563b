// internal/services/item_service_test.go
package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/bazaarworks/marketplace-backend/internal/services"
)

type ItemServiceTestSuite struct {
	suite.Suite
	db          *gorm.DB
	itemService *services.ItemService
}

func (suite *ItemServiceTestSuite) SetupTest() {
	suite.db = setupTestDB(suite.T())
	suite.itemService = services.NewItemService(suite.db)
}

func (suite *ItemServiceTestSuite) TestCreateItemRequiresAllFields() {
	_, err := suite.itemService.CreateItem(&services.CreateItemRequest{
		ItemName: "lamp",
		Category: "home",
	}, "https://cdn.example.com/items/lamp.png")

	assert.ErrorIs(suite.T(), err, services.ErrMissingFields)

	_, err = suite.itemService.CreateItem(&services.CreateItemRequest{
		ItemName: "lamp",
		Category: "home",
		ItemDesc: "a lamp",
		Stock:    5,
	}, "")

	assert.ErrorIs(suite.T(), err, services.ErrMissingFields)
}

func (suite *ItemServiceTestSuite) TestGetItemByID() {
	item := createTestItem(suite.T(), suite.db, "lamp", "home", 5)

	found, err := suite.itemService.GetItemByID(item.ItemID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "lamp", found.ItemName)

	_, err = suite.itemService.GetItemByID(404)
	assert.ErrorIs(suite.T(), err, services.ErrItemNotFound)
}

func (suite *ItemServiceTestSuite) TestGetItemsByCategory() {
	createTestItem(suite.T(), suite.db, "lamp", "home", 5)
	createTestItem(suite.T(), suite.db, "chair", "home", 2)
	createTestItem(suite.T(), suite.db, "mug", "kitchen", 3)

	home, err := suite.itemService.GetItemsByCategory("home")
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), home, 2)

	// Empty result is a valid outcome for a list query.
	garden, err := suite.itemService.GetItemsByCategory("garden")
	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), garden)
}

func (suite *ItemServiceTestSuite) TestAddItemToUser() {
	user := createTestUser(suite.T(), suite.db, "Ann", "ann@x.com")
	item := createTestItem(suite.T(), suite.db, "lamp", "home", 5)

	err := suite.itemService.AddItemToUser(user.ID, item.ItemID)
	assert.NoError(suite.T(), err)

	items, err := suite.itemService.GetItemsByUser(user.ID)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), items, 1)
	assert.Equal(suite.T(), item.ItemID, items[0].ItemID)
}

func (suite *ItemServiceTestSuite) TestAddItemToUserDuplicateRejected() {
	user := createTestUser(suite.T(), suite.db, "Ann", "ann@x.com")
	item := createTestItem(suite.T(), suite.db, "lamp", "home", 5)

	err := suite.itemService.AddItemToUser(user.ID, item.ItemID)
	assert.NoError(suite.T(), err)

	// Adding an already-present pair reports failure, no duplicate row.
	err = suite.itemService.AddItemToUser(user.ID, item.ItemID)
	assert.ErrorIs(suite.T(), err, services.ErrItemAlreadyAdded)

	var count int64
	suite.db.Table("user_items").Count(&count)
	assert.Equal(suite.T(), int64(1), count)
}

func (suite *ItemServiceTestSuite) TestAddItemToUserMissingParty() {
	user := createTestUser(suite.T(), suite.db, "Ann", "ann@x.com")
	item := createTestItem(suite.T(), suite.db, "lamp", "home", 5)

	err := suite.itemService.AddItemToUser(404, item.ItemID)
	assert.ErrorIs(suite.T(), err, services.ErrUserNotFound)

	err = suite.itemService.AddItemToUser(user.ID, 404)
	assert.ErrorIs(suite.T(), err, services.ErrItemNotFound)
}

func (suite *ItemServiceTestSuite) TestUpdateItemPartial() {
	item := createTestItem(suite.T(), suite.db, "lamp", "home", 5)

	newStock := 7
	_, err := suite.itemService.UpdateItem(item.ItemID, &services.UpdateItemRequest{
		Stock: &newStock,
	})
	assert.NoError(suite.T(), err)

	updated, err := suite.itemService.GetItemByID(item.ItemID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 7, updated.Stock)
	// Untouched fields keep their values.
	assert.Equal(suite.T(), "lamp", updated.ItemName)
	assert.Equal(suite.T(), "home", updated.Category)
}

func (suite *ItemServiceTestSuite) TestDeleteItem() {
	item := createTestItem(suite.T(), suite.db, "lamp", "home", 5)

	_, err := suite.itemService.DeleteItem(item.ItemID)
	assert.NoError(suite.T(), err)

	_, err = suite.itemService.GetItemByID(item.ItemID)
	assert.ErrorIs(suite.T(), err, services.ErrItemNotFound)
}

func TestItemServiceSuite(t *testing.T) {
	suite.Run(t, new(ItemServiceTestSuite))
}
