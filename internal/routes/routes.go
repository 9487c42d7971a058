package routes

import (
	"context"
	"net/http"

	ginlogger "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"motoyard/internal/config"
	"motoyard/internal/controllers"
	"motoyard/internal/middleware"
	"motoyard/internal/repository"
	"motoyard/internal/risk"
	"motoyard/internal/services"
)

// SetupRouter wires repositories, services and controllers and registers
// every route group. The risk model is trained once here, from the
// check-ins already in the store.
func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ginlogger.SetLogger())
	r.Use(middleware.RequireAPIKey())

	db := config.GetDB()

	motoRepo := repository.NewMotoRepository(db)
	slotRepo := repository.NewSlotRepository(db)
	userRepo := repository.NewUserRepository(db)
	checkinRepo := repository.NewCheckinRepository(db)

	motoService := services.NewMotoService(motoRepo)
	slotService := services.NewSlotService(slotRepo, motoRepo)
	userService := services.NewUserService(userRepo)
	checkinService := services.NewCheckinService(checkinRepo, motoRepo, userRepo)

	model, err := risk.BootstrapModel(context.Background(), checkinRepo)
	if err != nil {
		logrus.Fatalf("failed to train risk model: %v", err)
	}
	riskService := risk.NewService(risk.NewPredictor(model), checkinRepo)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	MotoRoutes(r, controllers.NewMotoController(motoService))
	SlotRoutes(r, controllers.NewSlotController(slotService))
	UserRoutes(r, controllers.NewUserController(userService))
	CheckinRoutes(r, controllers.NewCheckinController(checkinService))
	RiskRoutes(r, controllers.NewRiskController(riskService))

	return r
}
