package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mmlabtech/lims_backend/models"
)

func ListCalibrationRecords(c *gin.Context) {
	equipmentId, ok := queryIntPtr(c, "equipment_id")
	if !ok {
		return
	}
	records, err := models.ListCalibrationRecords(c.Request.Context(), equipmentId)
	if err != nil {
		abortWithError(c, "ListCalibrationRecords", err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func CreateCalibrationRecord(c *gin.Context) {
	var input models.NewCalibrationRecord
	if !bindJSON(c, &input) {
		return
	}
	record, err := models.CreateCalibrationRecord(c.Request.Context(), &input)
	if err != nil {
		abortWithError(c, "CreateCalibrationRecord", err)
		return
	}
	recordActivity(c, "recorded calibration for equipment")
	c.JSON(http.StatusCreated, record)
}

func UpdateCalibrationRecord(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var input models.NewCalibrationRecord
	if !bindJSON(c, &input) {
		return
	}
	record, err := models.UpdateCalibrationRecord(c.Request.Context(), id, &input)
	if err != nil {
		abortWithError(c, "UpdateCalibrationRecord", err)
		return
	}
	recordActivity(c, "updated calibration record")
	c.JSON(http.StatusOK, record)
}

func DeleteCalibrationRecord(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	record, err := models.DeleteCalibrationRecord(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, "DeleteCalibrationRecord", err)
		return
	}
	recordActivity(c, "deleted calibration record")
	c.JSON(http.StatusOK, record)
}
