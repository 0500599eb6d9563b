// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bazaarworks/marketplace-backend/internal/config"
	"github.com/bazaarworks/marketplace-backend/internal/handlers"
	"github.com/bazaarworks/marketplace-backend/internal/middleware"
	"github.com/bazaarworks/marketplace-backend/internal/services"
	"github.com/bazaarworks/marketplace-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	// Initialize services
	storageService, err := services.NewStorageService(cfg)
	if err != nil {
		return nil, err
	}

	authService := services.NewAuthService(db, cfg)
	userService := services.NewUserService(db, cfg)
	itemService := services.NewItemService(db)
	orderService := services.NewOrderService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	itemHandler := handlers.NewItemHandler(itemService, storageService)
	orderHandler := handlers.NewOrderHandler(orderService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.Admin.APIKeyHeader))
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("", authHandler.Authenticate)
		}

		// Users
		users := v1.Group("/users")
		{
			users.POST("", middleware.AuthRateLimit(), userHandler.Register)
			users.PUT("/:id", middleware.AuthRequired(), userHandler.UpdateUser)

			// Admin-only listing and deletion, gated by the API key alone.
			admin := users.Group("")
			admin.Use(middleware.APIKeyRequired(cfg.Admin))
			{
				admin.GET("", userHandler.GetUsers)
				admin.GET("/:id", userHandler.GetUser)
				admin.DELETE("/:id", userHandler.DeleteUser)
			}
		}

		// Items
		items := v1.Group("/items")
		{
			items.GET("", itemHandler.GetItems)
			items.GET("/:itemId", itemHandler.GetItem)
			items.GET("/user/:userId", itemHandler.GetItemsByUser)
			items.GET("/category/:category", itemHandler.GetItemsByCategory)

			protected := items.Group("")
			protected.Use(middleware.AuthRequired())
			{
				protected.POST("", itemHandler.CreateItem)
				protected.PUT("/:itemId", itemHandler.UpdateItem)
				protected.DELETE("/:itemId", itemHandler.DeleteItem)
				protected.POST("/add-item/:userId/:itemId", itemHandler.AddItemToUser)
			}
		}

		// Orders
		orders := v1.Group("/orders")
		{
			orders.POST("", orderHandler.CreateOrder)
			orders.GET("", orderHandler.GetOrders)
			orders.GET("/:orderId", orderHandler.GetOrder)
			orders.GET("/user/:userId", orderHandler.GetOrdersByUser)
			orders.POST("/:orderId/items/:itemId", orderHandler.AddItemToOrder)
			orders.DELETE("/:orderId", orderHandler.DeleteOrder)
		}
	}

	return r, nil
}
