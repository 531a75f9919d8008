package routes

import (
	"github.com/gin-gonic/gin"

	"tasktracker/internal/handlers"
)

func SetupRoutes(r *gin.Engine, taskHandler *handlers.TaskHandler) *gin.Engine {
	r.GET("/", taskHandler.Index)

	r.GET("/add", taskHandler.NewForm)
	r.POST("/add", taskHandler.Create)

	r.GET("/edit/:id", taskHandler.EditForm)
	r.POST("/edit/:id", taskHandler.Update)

	r.POST("/delete/:id", taskHandler.Delete)
	r.POST("/toggle/:id", taskHandler.Toggle)

	return r
}
