// internal/handlers/order.go
package handlers

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/bazaarworks/marketplace-backend/internal/services"
	"github.com/bazaarworks/marketplace-backend/internal/utils"
)

type OrderHandler struct {
	orderService *services.OrderService
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// POST /orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req services.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Missing data in the request body")
		return
	}

	order, err := h.orderService.CreateOrder(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingFields):
			utils.BadRequestResponse(c, services.ErrMissingFields.Error())
		case errors.Is(err, services.ErrUserNotFound),
			errors.Is(err, services.ErrItemNotFound),
			errors.Is(err, services.ErrItemAlreadyInOrder):
			// All-or-nothing: any bad reference fails the whole create.
			utils.BadRequestResponse(c, fmt.Sprintf("order not created: %s", err.Error()))
		default:
			utils.InternalErrorResponse(c, "")
		}
		return
	}

	utils.SuccessResponse(c, fmt.Sprintf("order %d created successfully", order.OrderID))
}

// GET /orders
func (h *OrderHandler) GetOrders(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	orders, err := h.orderService.GetOrders(params)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"orders": orders,
	})
}

// GET /orders/:orderId
func (h *OrderHandler) GetOrder(c *gin.Context) {
	orderID, ok := parseID(c, "orderId")
	if !ok {
		return
	}

	order, err := h.orderService.GetOrderByID(orderID)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			utils.NotFoundResponse(c, services.ErrOrderNotFound.Error())
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"order": order,
	})
}

// GET /orders/user/:userId
func (h *OrderHandler) GetOrdersByUser(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}

	orders, err := h.orderService.GetOrdersByUser(userID)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"orders": orders,
	})
}

// POST /orders/:orderId/items/:itemId
func (h *OrderHandler) AddItemToOrder(c *gin.Context) {
	orderID, ok := parseID(c, "orderId")
	if !ok {
		return
	}
	itemID, ok := parseID(c, "itemId")
	if !ok {
		return
	}

	if _, err := h.orderService.AddItem(orderID, itemID); err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			utils.NotFoundResponse(c, services.ErrOrderNotFound.Error())
		case errors.Is(err, services.ErrItemNotFound):
			utils.NotFoundResponse(c, services.ErrItemNotFound.Error())
		case errors.Is(err, services.ErrItemAlreadyInOrder):
			utils.BadRequestResponse(c, services.ErrItemAlreadyInOrder.Error())
		default:
			utils.InternalErrorResponse(c, "")
		}
		return
	}

	utils.SuccessResponse(c, fmt.Sprintf("item %d added to order %d", itemID, orderID))
}

// DELETE /orders/:orderId
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	orderID, ok := parseID(c, "orderId")
	if !ok {
		return
	}

	if _, err := h.orderService.DeleteOrder(orderID); err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			utils.NotFoundResponse(c, services.ErrOrderNotFound.Error())
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, fmt.Sprintf("order %d deleted successfully", orderID))
}
