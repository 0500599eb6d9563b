// internal/services/item_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/bazaarworks/marketplace-backend/internal/models"
	"github.com/bazaarworks/marketplace-backend/internal/utils"
)

type ItemService struct {
	db *gorm.DB
}

type CreateItemRequest struct {
	ItemName string `form:"itemName" validate:"required"`
	Category string `form:"category" validate:"required"`
	ItemDesc string `form:"itemDesc" validate:"required"`
	Stock    int    `form:"stock" validate:"required,min=0"`
}

type UpdateItemRequest struct {
	ItemName string   `json:"itemName,omitempty"`
	Category string   `json:"category,omitempty"`
	ItemDesc string   `json:"itemDesc,omitempty"`
	Stock    *int     `json:"stock,omitempty" validate:"omitempty,min=0"`
	ItemPic  string   `json:"itemPic,omitempty"`
	Rating   *float64 `json:"rating,omitempty" validate:"omitempty,min=0,max=5"`
	Reviews  []string `json:"reviews,omitempty"`
}

func NewItemService(db *gorm.DB) *ItemService {
	return &ItemService{db: db}
}

// CreateItem persists a catalog entry. The image has already been stored;
// picURL is the write-once location handed back by the storage service.
func (s *ItemService) CreateItem(req *CreateItemRequest, picURL string) (*models.Item, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, ErrMissingFields
	}
	if picURL == "" {
		return nil, ErrMissingFields
	}

	item := &models.Item{
		ItemName: req.ItemName,
		Category: req.Category,
		ItemDesc: req.ItemDesc,
		Stock:    req.Stock,
		ItemPic:  picURL,
	}

	if err := s.db.Create(item).Error; err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	return item, nil
}

func (s *ItemService) GetItems(params utils.PaginationParams) ([]models.Item, error) {
	var items []models.Item

	query := utils.ApplySort(s.db.Model(&models.Item{}), params, []string{"created_at", "item_name", "category", "stock"})
	query = utils.ApplyPagination(query, params)

	if err := query.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}

	return items, nil
}

func (s *ItemService) GetItemByID(itemID uint) (*models.Item, error) {
	var item models.Item
	if err := s.db.First(&item, itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &item, nil
}

// GetItemsByUser lists the user's catalog association. Empty is a valid
// result, not an error.
func (s *ItemService) GetItemsByUser(userID uint) ([]models.Item, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	var items []models.Item
	if err := s.db.Model(&user).Association("Items").Find(&items); err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}

	return items, nil
}

func (s *ItemService) GetItemsByCategory(category string) ([]models.Item, error) {
	var items []models.Item
	if err := s.db.Where("category = ?", category).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	return items, nil
}

// UpdateItem applies only the provided fields. Orders that already hold a
// snapshot of this item are untouched.
func (s *ItemService) UpdateItem(itemID uint, req *UpdateItemRequest) (*models.Item, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, ErrMissingFields
	}

	item, err := s.GetItemByID(itemID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.ItemName != "" {
		updates["item_name"] = req.ItemName
	}
	if req.Category != "" {
		updates["category"] = req.Category
	}
	if req.ItemDesc != "" {
		updates["item_desc"] = req.ItemDesc
	}
	if req.Stock != nil {
		updates["stock"] = *req.Stock
	}
	if req.ItemPic != "" {
		updates["item_pic"] = req.ItemPic
	}
	if req.Rating != nil {
		updates["rating"] = *req.Rating
	}
	if req.Reviews != nil {
		updates["reviews"] = pq.StringArray(req.Reviews)
	}

	if len(updates) > 0 {
		if err := s.db.Model(item).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update item: %w", err)
		}
	}

	return item, nil
}

func (s *ItemService) DeleteItem(itemID uint) (*models.Item, error) {
	item, err := s.GetItemByID(itemID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Delete(item).Error; err != nil {
		return nil, fmt.Errorf("failed to delete item: %w", err)
	}

	return item, nil
}

// AddItemToUser links an item into the user's catalog association. The pair
// is unique: linking an already-linked item reports failure, no duplicate
// row.
func (s *ItemService) AddItemToUser(userID, itemID uint) error {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("database error: %w", err)
	}

	var item models.Item
	if err := s.db.First(&item, itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrItemNotFound
		}
		return fmt.Errorf("database error: %w", err)
	}

	var count int64
	if err := s.db.Table("user_items").
		Where("user_id = ? AND item_item_id = ?", userID, itemID).
		Count(&count).Error; err != nil {
		return fmt.Errorf("database error: %w", err)
	}
	if count > 0 {
		return ErrItemAlreadyAdded
	}

	if err := s.db.Model(&user).Association("Items").Append(&item); err != nil {
		return fmt.Errorf("failed to add item to user: %w", err)
	}

	return nil
}
