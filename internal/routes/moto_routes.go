package routes

import (
	"github.com/gin-gonic/gin"

	"motoyard/internal/controllers"
)

func MotoRoutes(r *gin.Engine, ctrl *controllers.MotoController) {
	motos := r.Group("/motos")
	{
		motos.GET("", ctrl.List)
		motos.GET("/:id", ctrl.Get)
		motos.POST("", ctrl.Create)
		motos.PUT("/:id", ctrl.Update)
		motos.DELETE("/:id", ctrl.Delete)
	}
}
