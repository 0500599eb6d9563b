// internal/handlers/user.go
package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bazaarworks/marketplace-backend/internal/services"
	"github.com/bazaarworks/marketplace-backend/internal/utils"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// POST /users
func (h *UserHandler) Register(c *gin.Context) {
	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Missing data in the request body")
		return
	}

	result, err := h.userService.Register(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingFields):
			utils.BadRequestResponse(c, services.ErrMissingFields.Error())
		case errors.Is(err, services.ErrEmailTaken):
			utils.BadRequestResponse(c, services.ErrEmailTaken.Error())
		default:
			utils.InternalErrorResponse(c, "")
		}
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": result.Message,
		"token":   result.Token,
	})
}

// GET /users (admin API key required)
func (h *UserHandler) GetUsers(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	users, err := h.userService.GetUsers(params)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"users": users,
	})
}

// GET /users/:id (admin API key required)
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.GetUserByID(id)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			utils.NotFoundResponse(c, services.ErrUserNotFound.Error())
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"user": user,
	})
}

// PUT /users/:id (bearer required)
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req services.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Missing data in the request body")
		return
	}

	user, err := h.userService.UpdateUser(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			utils.NotFoundResponse(c, services.ErrUserNotFound.Error())
		case errors.Is(err, services.ErrMissingFields):
			utils.BadRequestResponse(c, services.ErrMissingFields.Error())
		default:
			utils.InternalErrorResponse(c, "")
		}
		return
	}

	utils.CreatedResponse(c, fmt.Sprintf("user %s updated successfully", user.Name))
}

// DELETE /users/:id (admin API key required)
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.DeleteUser(id)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			utils.NotFoundResponse(c, services.ErrUserNotFound.Error())
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, fmt.Sprintf("user %s deleted successfully", user.Name))
}

func parseID(c *gin.Context, param string) (uint, bool) {
	raw := c.Param(param)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		utils.BadRequestResponse(c, fmt.Sprintf("invalid %s", param))
		return 0, false
	}
	return uint(id), true
}
