package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"motoyard/internal/models"
	"motoyard/internal/services"
)

type motoInput struct {
	Model    string `json:"model"`
	Brand    string `json:"brand"`
	Year     int    `json:"year"`
	Plate    string `json:"plate"`
	Status   string `json:"status"`
	PhotoURL string `json:"photo_url"`
}

type MotoController struct {
	service services.MotoService
}

func NewMotoController(service services.MotoService) *MotoController {
	return &MotoController{service: service}
}

func (mc *MotoController) List(c *gin.Context) {
	motos, err := mc.service.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, motos)
}

func (mc *MotoController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	moto, err := mc.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if moto == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "moto not found"})
		return
	}
	c.JSON(http.StatusOK, moto)
}

func (mc *MotoController) Create(c *gin.Context) {
	var input motoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid moto input: " + err.Error()})
		return
	}

	// Id is always server-assigned; the input shape cannot carry one.
	moto := models.Moto{
		Model:    input.Model,
		Brand:    input.Brand,
		Year:     input.Year,
		Plate:    input.Plate,
		Status:   input.Status,
		PhotoURL: input.PhotoURL,
	}

	created, err := mc.service.Create(c.Request.Context(), &moto)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (mc *MotoController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input motoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid moto input: " + err.Error()})
		return
	}

	moto := models.Moto{
		Model:    input.Model,
		Brand:    input.Brand,
		Year:     input.Year,
		Plate:    input.Plate,
		Status:   input.Status,
		PhotoURL: input.PhotoURL,
	}

	if err := mc.service.Update(c.Request.Context(), id, &moto); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (mc *MotoController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := mc.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
