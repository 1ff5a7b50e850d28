package controllers

import (
	"net/http"

	"github.com/Makai-Stern/shoppingify-api/middlewares"
	"github.com/Makai-Stern/shoppingify-api/services"

	"github.com/gin-gonic/gin"
)

func GetUser(c *gin.Context) {
	currentUser := middlewares.CurrentUser(c)

	user, err := services.GetUser(currentUser.ID, c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "User")
		return
	}
	c.JSON(http.StatusOK, user.ToMap())
}

func UpdateUser(c *gin.Context) {
	currentUser := middlewares.CurrentUser(c)

	var patch services.UserPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.UpdateUser(currentUser.ID, c.Param("id"), patch)
	if err != nil {
		respondServiceError(c, err, "User")
		return
	}
	c.JSON(http.StatusOK, user.ToMap())
}

func DeleteUser(c *gin.Context) {
	currentUser := middlewares.CurrentUser(c)

	data, err := services.DeleteUser(currentUser.ID, c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "User")
		return
	}

	middlewares.ClearTokenCookie(c)
	c.JSON(http.StatusOK, data)
}
