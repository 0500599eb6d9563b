// internal/handlers/item.go
package handlers

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/bazaarworks/marketplace-backend/internal/services"
	"github.com/bazaarworks/marketplace-backend/internal/utils"
)

type ItemHandler struct {
	itemService    *services.ItemService
	storageService *services.StorageService
}

func NewItemHandler(itemService *services.ItemService, storageService *services.StorageService) *ItemHandler {
	return &ItemHandler{
		itemService:    itemService,
		storageService: storageService,
	}
}

// POST /items (bearer required, multipart form with image file)
func (h *ItemHandler) CreateItem(c *gin.Context) {
	var req services.CreateItemRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.BadRequestResponse(c, "Missing data in the request body")
		return
	}

	file, header, err := c.Request.FormFile("itemPic")
	if err != nil {
		utils.BadRequestResponse(c, "Missing data in the request body")
		return
	}
	defer file.Close()

	if err := h.storageService.ValidateImage(file); err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}

	upload, err := h.storageService.UploadFile(file, header, services.ItemImageUploadOptions())
	if err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}

	item, err := h.itemService.CreateItem(&req, upload.URL)
	if err != nil {
		if errors.Is(err, services.ErrMissingFields) {
			utils.BadRequestResponse(c, services.ErrMissingFields.Error())
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, fmt.Sprintf("item %d created successfully", item.ItemID))
}

// GET /items
func (h *ItemHandler) GetItems(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	items, err := h.itemService.GetItems(params)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"items": items,
	})
}

// GET /items/:itemId
func (h *ItemHandler) GetItem(c *gin.Context) {
	itemID, ok := parseID(c, "itemId")
	if !ok {
		return
	}

	item, err := h.itemService.GetItemByID(itemID)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			utils.NotFoundResponse(c, services.ErrItemNotFound.Error())
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"item": item,
	})
}

// GET /items/user/:userId
func (h *ItemHandler) GetItemsByUser(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}

	items, err := h.itemService.GetItemsByUser(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			utils.NotFoundResponse(c, services.ErrUserNotFound.Error())
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"items": items,
	})
}

// GET /items/category/:category
func (h *ItemHandler) GetItemsByCategory(c *gin.Context) {
	category := c.Param("category")

	items, err := h.itemService.GetItemsByCategory(category)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"items": items,
	})
}

// PUT /items/:itemId (bearer required)
func (h *ItemHandler) UpdateItem(c *gin.Context) {
	itemID, ok := parseID(c, "itemId")
	if !ok {
		return
	}

	var req services.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Missing data in the request body")
		return
	}

	item, err := h.itemService.UpdateItem(itemID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrItemNotFound):
			utils.NotFoundResponse(c, services.ErrItemNotFound.Error())
		case errors.Is(err, services.ErrMissingFields):
			utils.BadRequestResponse(c, services.ErrMissingFields.Error())
		default:
			utils.InternalErrorResponse(c, "")
		}
		return
	}

	utils.SuccessResponse(c, fmt.Sprintf("item %d updated successfully", item.ItemID))
}

// DELETE /items/:itemId (bearer required)
func (h *ItemHandler) DeleteItem(c *gin.Context) {
	itemID, ok := parseID(c, "itemId")
	if !ok {
		return
	}

	item, err := h.itemService.DeleteItem(itemID)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			utils.NotFoundResponse(c, services.ErrItemNotFound.Error())
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, fmt.Sprintf("item %d deleted successfully", item.ItemID))
}

// POST /items/add-item/:userId/:itemId (bearer required)
func (h *ItemHandler) AddItemToUser(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}
	itemID, ok := parseID(c, "itemId")
	if !ok {
		return
	}

	if err := h.itemService.AddItemToUser(userID, itemID); err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			utils.NotFoundResponse(c, services.ErrUserNotFound.Error())
		case errors.Is(err, services.ErrItemNotFound):
			utils.NotFoundResponse(c, services.ErrItemNotFound.Error())
		case errors.Is(err, services.ErrItemAlreadyAdded):
			utils.BadRequestResponse(c, services.ErrItemAlreadyAdded.Error())
		default:
			utils.InternalErrorResponse(c, "")
		}
		return
	}

	utils.SuccessResponse(c, fmt.Sprintf("item %d added to user %d successfully", itemID, userID))
}
