package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/ministore/ministore-api/controllers/order"
	"gorm.io/gorm"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/orders")
	{
		// Checkout: convert the user's cart into an order
		orders.POST("/:id", orderControllers.CheckoutHandler(db))

		// Fetch orders for a specific user
		orders.GET("/user/:userID", orderControllers.GetUserOrders(db))

		orders.GET("/:id", orderControllers.GetOrderByID(db))
	}
}
