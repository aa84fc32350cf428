package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mmlabtech/lims_backend/models"
)

func ListLabResults(c *gin.Context) {
	patientId, ok := queryIntPtr(c, "patient_id")
	if !ok {
		return
	}
	testId, ok := queryIntPtr(c, "test_id")
	if !ok {
		return
	}
	results, err := models.ListLabResults(c.Request.Context(), patientId, testId)
	if err != nil {
		abortWithError(c, "ListLabResults", err)
		return
	}
	c.JSON(http.StatusOK, results)
}

func CreateLabResult(c *gin.Context) {
	var input models.NewLabResult
	if !bindJSON(c, &input) {
		return
	}
	result, err := models.CreateLabResult(c.Request.Context(), &input)
	if err != nil {
		abortWithError(c, "CreateLabResult", err)
		return
	}
	recordActivity(c, "recorded lab result")
	c.JSON(http.StatusCreated, result)
}

func UpdateLabResult(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var input models.NewLabResult
	if !bindJSON(c, &input) {
		return
	}
	result, err := models.UpdateLabResult(c.Request.Context(), id, &input)
	if err != nil {
		abortWithError(c, "UpdateLabResult", err)
		return
	}
	recordActivity(c, "updated lab result")
	c.JSON(http.StatusOK, result)
}

func DeleteLabResult(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	result, err := models.DeleteLabResult(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, "DeleteLabResult", err)
		return
	}
	recordActivity(c, "deleted draft lab result")
	c.JSON(http.StatusOK, result)
}
