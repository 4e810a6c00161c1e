package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ministore/ministore-api/catalog"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up all route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, provider catalog.Provider) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	SetupUserRoutes(r, db)
	SetupProductRoutes(r, db, provider)
	SetupCartRoutes(r, db, provider)
	SetupOrderRoutes(r, db)
}
