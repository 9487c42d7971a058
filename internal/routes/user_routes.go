package routes

import (
	"github.com/gin-gonic/gin"

	"motoyard/internal/controllers"
)

func UserRoutes(r *gin.Engine, ctrl *controllers.UserController) {
	users := r.Group("/users")
	{
		users.GET("", ctrl.List)
		users.GET("/:id", ctrl.Get)
		users.POST("", ctrl.Create)
		users.PUT("/:id", ctrl.Update)
		users.DELETE("/:id", ctrl.Delete)
		users.POST("/login", ctrl.Login)
	}
}
