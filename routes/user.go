package routes

import (
	"github.com/gin-gonic/gin"
	userControllers "github.com/ministore/ministore-api/controllers/user"
	"gorm.io/gorm"
)

func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	users := r.Group("/users")
	{
		users.POST("", userControllers.CreateUser(db))
		users.GET("", userControllers.GetAllUsers(db))
		users.GET("/:id", userControllers.GetUser(db))
	}
}
