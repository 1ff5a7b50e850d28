package controllers

import (
	"net/http"

	"github.com/Makai-Stern/shoppingify-api/middlewares"
	"github.com/Makai-Stern/shoppingify-api/services"

	"github.com/gin-gonic/gin"
)

type CartInput struct {
	Name   string   `json:"name" binding:"required"`
	Status string   `json:"status"`
	Foods  []string `json:"foods"`
}

func ListCarts(c *gin.Context) {
	currentUser := middlewares.CurrentUser(c)
	page, limit := pageParams(c)

	carts, err := services.ListCarts(currentUser.ID, page, limit)
	if err != nil {
		respondServiceError(c, err, "Cart")
		return
	}

	data := make([]map[string]interface{}, 0, len(carts))
	for i := range carts {
		data = append(data, carts[i].ToMap())
	}
	c.JSON(http.StatusOK, data)
}

func GetCart(c *gin.Context) {
	currentUser := middlewares.CurrentUser(c)

	cart, err := services.GetCart(currentUser.ID, c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Cart")
		return
	}
	c.JSON(http.StatusOK, cart.ToMap())
}

func CreateCart(c *gin.Context) {
	currentUser := middlewares.CurrentUser(c)

	var input CartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cart, err := services.CreateCart(currentUser.ID, input.Name, input.Status, input.Foods)
	if err != nil {
		respondServiceError(c, err, "Cart")
		return
	}
	c.JSON(http.StatusCreated, cart.ToMap())
}

func UpdateCart(c *gin.Context) {
	currentUser := middlewares.CurrentUser(c)

	var patch services.CartPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cart, err := services.UpdateCart(currentUser.ID, c.Param("id"), patch)
	if err != nil {
		respondServiceError(c, err, "Cart")
		return
	}
	c.JSON(http.StatusOK, cart.ToMap())
}

func DeleteCart(c *gin.Context) {
	currentUser := middlewares.CurrentUser(c)

	data, err := services.DeleteCart(currentUser.ID, c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Cart")
		return
	}
	c.JSON(http.StatusOK, data)
}
