package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/ministore/ministore-api/catalog"
	cartControllers "github.com/ministore/ministore-api/controllers/cart"
	"gorm.io/gorm"
)

func SetupCartRoutes(r *gin.Engine, db *gorm.DB, provider catalog.Provider) {
	cart := r.Group("/cart")
	{
		// POST /cart/:id takes a user id; the other two take a cart id.
		cart.POST("/:id", cartControllers.CreateOrGetCart(db))
		cart.GET("/:id", cartControllers.GetCart(db))
		cart.POST("/:id/items", cartControllers.AddCartItem(db, provider))
	}
}
