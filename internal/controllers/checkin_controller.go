package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"motoyard/internal/models"
	"motoyard/internal/services"
)

type checkinInput struct {
	MotoID      int        `json:"moto_id"`
	UserID      int        `json:"user_id"`
	Status      string     `json:"status"`
	Observation string     `json:"observation"`
	Timestamp   *time.Time `json:"timestamp"`
	ImagesURL   string     `json:"images_url"`
}

type CheckinController struct {
	service services.CheckinService
}

func NewCheckinController(service services.CheckinService) *CheckinController {
	return &CheckinController{service: service}
}

func (cc *CheckinController) List(c *gin.Context) {
	checkins, err := cc.service.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, checkins)
}

func (cc *CheckinController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	checkin, err := cc.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if checkin == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "checkin not found"})
		return
	}
	c.JSON(http.StatusOK, checkin)
}

func (cc *CheckinController) Create(c *gin.Context) {
	var input checkinInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid checkin input: " + err.Error()})
		return
	}

	checkin := buildCheckin(input)
	created, err := cc.service.Create(c.Request.Context(), &checkin)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (cc *CheckinController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input checkinInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid checkin input: " + err.Error()})
		return
	}

	checkin := buildCheckin(input)
	if err := cc.service.Update(c.Request.Context(), id, &checkin); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (cc *CheckinController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := cc.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func buildCheckin(input checkinInput) models.Checkin {
	checkin := models.Checkin{
		MotoID:      input.MotoID,
		UserID:      input.UserID,
		Status:      input.Status,
		Observation: input.Observation,
		ImagesURL:   input.ImagesURL,
	}
	if input.Timestamp != nil {
		checkin.Timestamp = *input.Timestamp
	}
	return checkin
}
