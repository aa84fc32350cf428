package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mmlabtech/lims_backend/models"
)

func ListEquipment(c *gin.Context) {
	sectionId, ok := queryIntPtr(c, "section_id")
	if !ok {
		return
	}
	var status *models.EquipmentStatus
	if raw := c.Query("status"); raw != "" {
		s := models.EquipmentStatus(raw)
		status = &s
	}
	equipment, err := models.ListEquipment(c.Request.Context(), sectionId, status)
	if err != nil {
		abortWithError(c, "ListEquipment", err)
		return
	}
	c.JSON(http.StatusOK, equipment)
}

func GetEquipment(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	equipment, err := models.GetEquipment(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, "GetEquipment", err)
		return
	}
	c.JSON(http.StatusOK, equipment)
}

func CreateEquipment(c *gin.Context) {
	var input models.NewEquipment
	if !bindJSON(c, &input) {
		return
	}
	equipment, err := models.CreateEquipment(c.Request.Context(), &input)
	if err != nil {
		abortWithError(c, "CreateEquipment", err)
		return
	}
	recordActivity(c, "registered equipment "+equipment.Name)
	c.JSON(http.StatusCreated, equipment)
}

func UpdateEquipment(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var input models.NewEquipment
	if !bindJSON(c, &input) {
		return
	}
	equipment, err := models.UpdateEquipment(c.Request.Context(), id, &input)
	if err != nil {
		abortWithError(c, "UpdateEquipment", err)
		return
	}
	recordActivity(c, "updated equipment "+equipment.Name)
	c.JSON(http.StatusOK, equipment)
}

func DeleteEquipment(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	equipment, err := models.DeleteEquipment(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, "DeleteEquipment", err)
		return
	}
	recordActivity(c, "deleted equipment "+equipment.Name)
	c.JSON(http.StatusOK, equipment)
}
