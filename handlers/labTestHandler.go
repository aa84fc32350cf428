package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mmlabtech/lims_backend/models"
)

func ListLabTests(c *gin.Context) {
	sectionId, ok := queryIntPtr(c, "section_id")
	if !ok {
		return
	}
	tests, err := models.ListLabTests(c.Request.Context(), sectionId)
	if err != nil {
		abortWithError(c, "ListLabTests", err)
		return
	}
	c.JSON(http.StatusOK, tests)
}

func GetLabTest(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	test, err := models.GetLabTest(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, "GetLabTest", err)
		return
	}
	c.JSON(http.StatusOK, test)
}

func CreateLabTest(c *gin.Context) {
	var input models.NewLabTest
	if !bindJSON(c, &input) {
		return
	}
	test, err := models.CreateLabTest(c.Request.Context(), &input)
	if err != nil {
		abortWithError(c, "CreateLabTest", err)
		return
	}
	recordActivity(c, "created test "+test.Name)
	c.JSON(http.StatusCreated, test)
}

func UpdateLabTest(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var input models.NewLabTest
	if !bindJSON(c, &input) {
		return
	}
	test, err := models.UpdateLabTest(c.Request.Context(), id, &input)
	if err != nil {
		abortWithError(c, "UpdateLabTest", err)
		return
	}
	recordActivity(c, "updated test "+test.Name)
	c.JSON(http.StatusOK, test)
}

func DeleteLabTest(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	test, err := models.DeleteLabTest(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, "DeleteLabTest", err)
		return
	}
	recordActivity(c, "deleted test "+test.Name)
	c.JSON(http.StatusOK, test)
}

func ListTestPriceHistory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	history, err := models.ListTestPriceHistory(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, "ListTestPriceHistory", err)
		return
	}
	c.JSON(http.StatusOK, history)
}
