package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"motoyard/internal/risk"
)

type predictInput struct {
	Observation string `json:"observation"`
}

type RiskController struct {
	service *risk.Service
}

func NewRiskController(service *risk.Service) *RiskController {
	return &RiskController{service: service}
}

// PredictAll scores every stored check-in and returns the aggregate report.
func (rc *RiskController) PredictAll(c *gin.Context) {
	report, err := rc.service.AnalyzeAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// Predict scores a single observation supplied by the caller.
func (rc *RiskController) Predict(c *gin.Context) {
	var input predictInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid prediction input: " + err.Error()})
		return
	}
	if strings.TrimSpace(input.Observation) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "observation must not be empty"})
		return
	}

	pred := rc.service.Predict(input.Observation)
	c.JSON(http.StatusOK, gin.H{
		"observation": input.Observation,
		"high_risk":   pred.HighRisk,
		"probability": pred.Probability,
	})
}
