package controllers

import (
	"net/http"

	"github.com/Makai-Stern/shoppingify-api/middlewares"
	"github.com/Makai-Stern/shoppingify-api/services"

	"github.com/gin-gonic/gin"
)

type CategoryInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func ListCategories(c *gin.Context) {
	currentUser := middlewares.CurrentUser(c)
	page, limit := pageParams(c)

	categories, err := services.ListCategories(currentUser.ID, page, limit)
	if err != nil {
		respondServiceError(c, err, "Category")
		return
	}

	data := make([]map[string]interface{}, 0, len(categories))
	for i := range categories {
		data = append(data, categories[i].ToMap())
	}
	c.JSON(http.StatusOK, data)
}

func GetCategory(c *gin.Context) {
	currentUser := middlewares.CurrentUser(c)

	category, err := services.GetCategory(currentUser.ID, c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Category")
		return
	}
	c.JSON(http.StatusOK, category.ToMap())
}

func CreateCategory(c *gin.Context) {
	currentUser := middlewares.CurrentUser(c)

	var input CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := services.CreateCategory(currentUser.ID, input.Name, input.Description)
	if err != nil {
		respondServiceError(c, err, "Category")
		return
	}
	c.JSON(http.StatusCreated, category.ToMap())
}

func UpdateCategory(c *gin.Context) {
	currentUser := middlewares.CurrentUser(c)

	var patch services.CategoryPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := services.UpdateCategory(currentUser.ID, c.Param("id"), patch)
	if err != nil {
		respondServiceError(c, err, "Category")
		return
	}
	c.JSON(http.StatusOK, category.ToMap())
}

func DeleteCategory(c *gin.Context) {
	currentUser := middlewares.CurrentUser(c)

	data, err := services.DeleteCategory(currentUser.ID, c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Category")
		return
	}
	c.JSON(http.StatusOK, data)
}
