package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mmlabtech/lims_backend/models"
)

func ListStockIns(c *gin.Context) {
	itemId, ok := queryIntPtr(c, "item_id")
	if !ok {
		return
	}
	entries, err := models.ListStockIns(c.Request.Context(), itemId)
	if err != nil {
		abortWithError(c, "ListStockIns", err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func CreateStockIn(c *gin.Context) {
	var input models.NewStockIn
	if !bindJSON(c, &input) {
		return
	}
	entry, err := models.CreateStockIn(c.Request.Context(), &input)
	if err != nil {
		abortWithError(c, "CreateStockIn", err)
		return
	}
	recordActivity(c, "recorded stock in")
	c.JSON(http.StatusCreated, entry)
}

func ListStockOuts(c *gin.Context) {
	itemId, ok := queryIntPtr(c, "item_id")
	if !ok {
		return
	}
	entries, err := models.ListStockOuts(c.Request.Context(), itemId)
	if err != nil {
		abortWithError(c, "ListStockOuts", err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func CreateStockOut(c *gin.Context) {
	var input models.NewStockOut
	if !bindJSON(c, &input) {
		return
	}
	entry, err := models.CreateStockOut(c.Request.Context(), &input)
	if err != nil {
		abortWithError(c, "CreateStockOut", err)
		return
	}
	recordActivity(c, "recorded stock out")
	c.JSON(http.StatusCreated, entry)
}
