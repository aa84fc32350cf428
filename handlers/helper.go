package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/mmlabtech/lims_backend/config"
	"github.com/mmlabtech/lims_backend/models"
	"github.com/mmlabtech/lims_backend/utils"
)

func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		if _, ok := err.(validator.ValidationErrors); ok {
			c.JSON(http.StatusBadRequest, gin.H{"errors": utils.ProcessValidationErrors(err)})
			return false
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

func idParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func queryIntPtr(c *gin.Context, name string) (*int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return nil, false
	}
	return &n, true
}

func abortWithError(c *gin.Context, funcName string, err error) {
	logger := config.GetLogger()
	config.LogError(logger, "handlers", funcName, c.FullPath(), nil, err)
	if err == utils.ErrorRecordNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// recordActivity is best effort: a failed audit write is logged, never
// surfaced to the caller.
func recordActivity(c *gin.Context, description string) {
	if err := models.RecordActivity(c.Request.Context(), description); err != nil {
		logger := config.GetLogger()
		config.LogError(logger, "handlers", "recordActivity", description, nil, err)
	}
}
