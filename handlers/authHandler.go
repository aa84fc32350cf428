package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mmlabtech/lims_backend/models"
	"github.com/mmlabtech/lims_backend/utils"
)

type loginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func Login(c *gin.Context) {
	var input loginInput
	if !bindJSON(c, &input) {
		return
	}

	user, err := models.Authenticate(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	token, err := utils.JwtGenerate(user.ID, string(user.Role))
	if err != nil {
		abortWithError(c, "Login", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

func Register(c *gin.Context) {
	var input models.NewUser
	if !bindJSON(c, &input) {
		return
	}

	user, err := models.CreateUser(c.Request.Context(), &input)
	if err != nil {
		abortWithError(c, "Register", err)
		return
	}

	recordActivity(c, "created user "+user.Username)
	c.JSON(http.StatusCreated, user)
}

func ListUsers(c *gin.Context) {
	users, err := models.ListUsers(c.Request.Context())
	if err != nil {
		abortWithError(c, "ListUsers", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func DeactivateUser(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	user, err := models.DeactivateUser(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, "DeactivateUser", err)
		return
	}

	recordActivity(c, "deactivated user "+user.Username)
	c.JSON(http.StatusOK, user)
}
