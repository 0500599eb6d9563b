// internal/utils/response.go
package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIResponse mirrors the transport status code in-body. `data` is a string
// for action results and an object/array for reads.
type APIResponse struct {
	Status int         `json:"status"`
	Data   interface{} `json:"data"`
}

func respond(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, APIResponse{
		Status: statusCode,
		Data:   data,
	})
}

func SuccessResponse(c *gin.Context, data interface{}) {
	respond(c, http.StatusOK, data)
}

func CreatedResponse(c *gin.Context, data interface{}) {
	respond(c, http.StatusCreated, data)
}

func BadRequestResponse(c *gin.Context, message string) {
	respond(c, http.StatusBadRequest, message)
}

func UnauthorizedResponse(c *gin.Context, message string) {
	respond(c, http.StatusUnauthorized, message)
}

func ForbiddenResponse(c *gin.Context, message string) {
	respond(c, http.StatusForbidden, message)
}

func NotFoundResponse(c *gin.Context, message string) {
	respond(c, http.StatusNotFound, message)
}

func InternalErrorResponse(c *gin.Context, message string) {
	if message == "" {
		message = "Internal server error"
	}
	respond(c, http.StatusInternalServerError, message)
}

func GetUserIDFromContext(c *gin.Context) (uint, bool) {
	if userID, exists := c.Get("user_id"); exists {
		if id, ok := userID.(uint); ok {
			return id, true
		}
	}
	return 0, false
}
