package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mmlabtech/lims_backend/models"
)

func ListItems(c *gin.Context) {
	sectionId, ok := queryIntPtr(c, "section_id")
	if !ok {
		return
	}
	items, err := models.ListItems(c.Request.Context(), sectionId)
	if err != nil {
		abortWithError(c, "ListItems", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func GetItem(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	item, err := models.GetItem(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, "GetItem", err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// GetItemStock returns the on-demand net stock for one item.
func GetItemStock(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	netStock, err := models.GetNetStock(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, "GetItemStock", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"item_id": id, "net_stock": netStock})
}

func CreateItem(c *gin.Context) {
	var input models.NewItem
	if !bindJSON(c, &input) {
		return
	}
	item, err := models.CreateItem(c.Request.Context(), &input)
	if err != nil {
		abortWithError(c, "CreateItem", err)
		return
	}
	recordActivity(c, "created item "+item.Name)
	c.JSON(http.StatusCreated, item)
}

func UpdateItem(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var input models.NewItem
	if !bindJSON(c, &input) {
		return
	}
	item, err := models.UpdateItem(c.Request.Context(), id, &input)
	if err != nil {
		abortWithError(c, "UpdateItem", err)
		return
	}
	recordActivity(c, "updated item "+item.Name)
	c.JSON(http.StatusOK, item)
}

func DeleteItem(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	item, err := models.DeleteItem(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, "DeleteItem", err)
		return
	}
	recordActivity(c, "deleted item "+item.Name)
	c.JSON(http.StatusOK, item)
}
