// internal/handlers/auth.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/bazaarworks/marketplace-backend/internal/services"
	"github.com/bazaarworks/marketplace-backend/internal/utils"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// POST /auth
func (h *AuthHandler) Authenticate(c *gin.Context) {
	var req services.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Missing data in the request body")
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.BadRequestResponse(c, "Missing data in the request body")
		return
	}

	result, err := h.authService.Authenticate(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			utils.NotFoundResponse(c, services.ErrUserNotFound.Error())
		case errors.Is(err, services.ErrInvalidPassword):
			utils.UnauthorizedResponse(c, services.ErrInvalidPassword.Error())
		default:
			utils.InternalErrorResponse(c, "")
		}
		return
	}

	utils.SuccessResponse(c, gin.H{
		"token": result.Token,
		"type":  result.Type,
		"name":  result.Name,
	})
}
