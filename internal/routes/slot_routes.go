package routes

import (
	"github.com/gin-gonic/gin"

	"motoyard/internal/controllers"
)

func SlotRoutes(r *gin.Engine, ctrl *controllers.SlotController) {
	slots := r.Group("/slots")
	{
		slots.GET("", ctrl.List)
		slots.GET("/:id", ctrl.Get)
		slots.POST("", ctrl.Create)
		slots.PUT("/:id", ctrl.Update)
		slots.DELETE("/:id", ctrl.Delete)
	}
}
