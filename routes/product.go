package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/ministore/ministore-api/catalog"
	productcontroller "github.com/ministore/ministore-api/controllers/product"
	"gorm.io/gorm"
)

func SetupProductRoutes(r *gin.Engine, db *gorm.DB, provider catalog.Provider) {
	products := r.Group("/products")
	{
		products.POST("", productcontroller.CreateProduct(db))
		products.GET("", productcontroller.GetProducts(db))

		// Catalog-backed endpoints
		products.GET("/categories", productcontroller.GetCategories(provider))
		products.GET("/category/:category", productcontroller.GetProductsByCategory(provider))

		products.GET("/:id", productcontroller.GetProductByID(db))
	}
}
