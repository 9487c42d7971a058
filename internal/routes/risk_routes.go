package routes

import (
	"github.com/gin-gonic/gin"

	"motoyard/internal/controllers"
)

func RiskRoutes(r *gin.Engine, ctrl *controllers.RiskController) {
	risk := r.Group("/risk")
	{
		risk.POST("/predict", ctrl.Predict)
		risk.POST("/predict-all", ctrl.PredictAll)
	}
}
