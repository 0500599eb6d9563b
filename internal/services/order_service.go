// internal/services/order_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bazaarworks/marketplace-backend/internal/models"
	"github.com/bazaarworks/marketplace-backend/internal/utils"
)

// addItemMaxRetries bounds the compare-and-swap loop on the order snapshot.
const addItemMaxRetries = 5

type OrderService struct {
	db *gorm.DB
}

type OrderItemRequest struct {
	ItemID uint `json:"itemId" validate:"required"`
}

type CreateOrderRequest struct {
	UserID uint               `json:"userId" validate:"required"`
	Items  []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// CreateOrder captures a snapshot of every referenced item and persists the
// order in one transaction. If any referenced item is missing the whole
// create fails; no partial order is ever written.
func (s *OrderService) CreateOrder(req *CreateOrderRequest) (*models.Order, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, ErrMissingFields
	}

	var order *models.Order

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, req.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("database error: %w", err)
		}

		snapshots := make(models.ItemSnapshots, 0, len(req.Items))
		for _, reqItem := range req.Items {
			if snapshots.Contains(reqItem.ItemID) {
				return ErrItemAlreadyInOrder
			}

			var item models.Item
			if err := tx.First(&item, reqItem.ItemID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrItemNotFound
				}
				return fmt.Errorf("database error: %w", err)
			}

			snapshots = append(snapshots, item.Snapshot())
		}

		order = &models.Order{
			OrderNumber:  uuid.NewString(),
			Status:       models.OrderStatusConfirmed,
			DeliveryDate: time.Now().AddDate(0, 0, 7),
			Items:        snapshots,
			UserID:       req.UserID,
		}

		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return order, nil
}

func (s *OrderService) GetOrders(params utils.PaginationParams) ([]models.Order, error) {
	var orders []models.Order

	query := utils.ApplySort(s.db.Model(&models.Order{}), params, []string{"created_at", "delivery_date", "status"})
	query = utils.ApplyPagination(query, params)

	if err := query.Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}

	return orders, nil
}

func (s *OrderService) GetOrderByID(orderID uint) (*models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &order, nil
}

func (s *OrderService) GetOrdersByUser(userID uint) ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Where("user_id = ?", userID).Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	return orders, nil
}

// AddItem appends a fresh snapshot of the item to the order. The
// read-decode-append-write sequence races with concurrent adds on the same
// order, so the write compares-and-swaps on the order's version column and
// retries from a fresh read when another writer got there first. A duplicate
// itemId rejects without mutation, including duplicates that appear only on
// re-read.
func (s *OrderService) AddItem(orderID, itemID uint) (*models.Order, error) {
	var item models.Item
	if err := s.db.First(&item, itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	for attempt := 0; attempt < addItemMaxRetries; attempt++ {
		order, err := s.GetOrderByID(orderID)
		if err != nil {
			return nil, err
		}

		if order.Items.Contains(itemID) {
			return nil, ErrItemAlreadyInOrder
		}

		updated := append(append(models.ItemSnapshots{}, order.Items...), item.Snapshot())

		res := s.db.Model(&models.Order{}).
			Where("order_id = ? AND version = ?", order.OrderID, order.Version).
			Updates(map[string]interface{}{
				"items":   updated,
				"version": order.Version + 1,
			})
		if res.Error != nil {
			return nil, fmt.Errorf("failed to update order: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			// Lost the race; re-read and try again.
			continue
		}

		order.Items = updated
		order.Version++
		return order, nil
	}

	return nil, fmt.Errorf("order %d is being updated concurrently, giving up after %d attempts", orderID, addItemMaxRetries)
}

func (s *OrderService) DeleteOrder(orderID uint) (*models.Order, error) {
	order, err := s.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Delete(order).Error; err != nil {
		return nil, fmt.Errorf("failed to delete order: %w", err)
	}

	return order, nil
}
