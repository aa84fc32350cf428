package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mmlabtech/lims_backend/models"
	"github.com/mmlabtech/lims_backend/utils"
)

func ListPatients(c *gin.Context) {
	name := utils.NilIfEmpty(c.Query("name"))
	patients, err := models.ListPatients(c.Request.Context(), name)
	if err != nil {
		abortWithError(c, "ListPatients", err)
		return
	}
	c.JSON(http.StatusOK, patients)
}

func GetPatient(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	patient, err := models.GetPatient(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, "GetPatient", err)
		return
	}
	c.JSON(http.StatusOK, patient)
}

func CreatePatient(c *gin.Context) {
	var input models.NewPatient
	if !bindJSON(c, &input) {
		return
	}
	patient, err := models.CreatePatient(c.Request.Context(), &input)
	if err != nil {
		abortWithError(c, "CreatePatient", err)
		return
	}
	recordActivity(c, "registered patient "+patient.LastName+", "+patient.FirstName)
	c.JSON(http.StatusCreated, patient)
}

func UpdatePatient(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var input models.NewPatient
	if !bindJSON(c, &input) {
		return
	}
	patient, err := models.UpdatePatient(c.Request.Context(), id, &input)
	if err != nil {
		abortWithError(c, "UpdatePatient", err)
		return
	}
	recordActivity(c, "updated patient "+patient.LastName+", "+patient.FirstName)
	c.JSON(http.StatusOK, patient)
}

func DeletePatient(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	patient, err := models.DeletePatient(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, "DeletePatient", err)
		return
	}
	recordActivity(c, "deleted patient "+patient.LastName+", "+patient.FirstName)
	c.JSON(http.StatusOK, patient)
}
