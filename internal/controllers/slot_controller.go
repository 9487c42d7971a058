package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"motoyard/internal/models"
	"motoyard/internal/services"
)

type slotInput struct {
	MotoID int    `json:"moto_id"`
	Status string `json:"status"`
}

type SlotController struct {
	service services.SlotService
}

func NewSlotController(service services.SlotService) *SlotController {
	return &SlotController{service: service}
}

func (sc *SlotController) List(c *gin.Context) {
	slots, err := sc.service.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, slots)
}

func (sc *SlotController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	slot, err := sc.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if slot == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "slot not found"})
		return
	}
	c.JSON(http.StatusOK, slot)
}

func (sc *SlotController) Create(c *gin.Context) {
	var input slotInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid slot input: " + err.Error()})
		return
	}

	slot := models.Slot{MotoID: input.MotoID, Status: input.Status}
	created, err := sc.service.Create(c.Request.Context(), &slot)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (sc *SlotController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input slotInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid slot input: " + err.Error()})
		return
	}

	slot := models.Slot{MotoID: input.MotoID, Status: input.Status}
	if err := sc.service.Update(c.Request.Context(), id, &slot); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (sc *SlotController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := sc.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
