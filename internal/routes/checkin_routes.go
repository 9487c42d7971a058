package routes

import (
	"github.com/gin-gonic/gin"

	"motoyard/internal/controllers"
)

func CheckinRoutes(r *gin.Engine, ctrl *controllers.CheckinController) {
	checkins := r.Group("/checkins")
	{
		checkins.GET("", ctrl.List)
		checkins.GET("/:id", ctrl.Get)
		checkins.POST("", ctrl.Create)
		checkins.PUT("/:id", ctrl.Update)
		checkins.DELETE("/:id", ctrl.Delete)
	}
}
