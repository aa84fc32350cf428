package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mmlabtech/lims_backend/models"
)

func ListSections(c *gin.Context) {
	sections, err := models.ListSections(c.Request.Context())
	if err != nil {
		abortWithError(c, "ListSections", err)
		return
	}
	c.JSON(http.StatusOK, sections)
}

func GetSection(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	section, err := models.GetSection(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, "GetSection", err)
		return
	}
	c.JSON(http.StatusOK, section)
}

func CreateSection(c *gin.Context) {
	var input models.NewSection
	if !bindJSON(c, &input) {
		return
	}
	section, err := models.CreateSection(c.Request.Context(), &input)
	if err != nil {
		abortWithError(c, "CreateSection", err)
		return
	}
	recordActivity(c, "created section "+section.Name)
	c.JSON(http.StatusCreated, section)
}

func UpdateSection(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var input models.NewSection
	if !bindJSON(c, &input) {
		return
	}
	section, err := models.UpdateSection(c.Request.Context(), id, &input)
	if err != nil {
		abortWithError(c, "UpdateSection", err)
		return
	}
	recordActivity(c, "updated section "+section.Name)
	c.JSON(http.StatusOK, section)
}

func DeleteSection(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	section, err := models.DeleteSection(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, "DeleteSection", err)
		return
	}
	recordActivity(c, "deleted section "+section.Name)
	c.JSON(http.StatusOK, section)
}
