package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ministore/ministore-api/catalog"
)

// GetCategories returns the distinct categories known to the catalog.
func GetCategories(p catalog.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := p.ListCategories()
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch categories"})
			return
		}

		c.JSON(http.StatusOK, categories)
	}
}

// GetProductsByCategory returns the catalog's products for a category id.
// Unknown categories answer 200 with an empty list.
func GetProductsByCategory(p catalog.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := p.ListByCategory(c.Param("category"))
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, products)
	}
}
