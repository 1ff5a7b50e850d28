package controllers

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/Makai-Stern/shoppingify-api/config"
	"github.com/Makai-Stern/shoppingify-api/middlewares"
	"github.com/Makai-Stern/shoppingify-api/services"

	"github.com/gin-gonic/gin"
)

func ListFoods(c *gin.Context) {
	currentUser := middlewares.CurrentUser(c)
	page, limit := pageParams(c)

	foods, err := services.ListFoods(currentUser.ID, page, limit)
	if err != nil {
		respondServiceError(c, err, "Food")
		return
	}

	data := make([]map[string]interface{}, 0, len(foods))
	for i := range foods {
		data = append(data, foods[i].ToMap(config.C.Domain))
	}
	c.JSON(http.StatusOK, data)
}

func GetFood(c *gin.Context) {
	currentUser := middlewares.CurrentUser(c)

	food, err := services.GetFood(currentUser.ID, c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Food")
		return
	}
	c.JSON(http.StatusOK, food.ToMap(config.C.Domain))
}

// formImage pulls the optional multipart image field, keeping the uploaded
// file's extension.
func formImage(c *gin.Context) (*services.ImageUpload, error) {
	header, err := c.FormFile("image")
	if err != nil || header.Filename == "" {
		return nil, nil
	}

	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	return &services.ImageUpload{Reader: file, Ext: filepath.Ext(header.Filename)}, nil
}

func splitCategories(raw string) []string {
	parts := strings.Split(raw, ",")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func CreateFood(c *gin.Context) {
	currentUser := middlewares.CurrentUser(c)

	name := c.PostForm("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required."})
		return
	}

	image, err := formImage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image could not be read."})
		return
	}

	var categories []string
	if raw := c.PostForm("categories"); raw != "" {
		categories = splitCategories(raw)
	}

	food, err := services.CreateFood(currentUser.ID, name, c.PostForm("description"), image, categories)
	if err != nil {
		respondServiceError(c, err, "Food")
		return
	}
	c.JSON(http.StatusCreated, food.ToMap(config.C.Domain))
}

func UpdateFood(c *gin.Context) {
	currentUser := middlewares.CurrentUser(c)

	var patch services.FoodPatch
	if name, ok := c.GetPostForm("name"); ok {
		patch.Name = &name
	}
	if description, ok := c.GetPostForm("description"); ok {
		patch.Description = &description
	}
	if raw, ok := c.GetPostForm("categories"); ok && raw != "" {
		categories := splitCategories(raw)
		patch.Categories = &categories
	}

	image, err := formImage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image could not be read."})
		return
	}
	patch.Image = image

	food, err := services.UpdateFood(currentUser.ID, c.Param("id"), patch)
	if err != nil {
		respondServiceError(c, err, "Food")
		return
	}
	c.JSON(http.StatusOK, food.ToMap(config.C.Domain))
}

func DeleteFood(c *gin.Context) {
	currentUser := middlewares.CurrentUser(c)

	data, err := services.DeleteFood(currentUser.ID, c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Food")
		return
	}
	c.JSON(http.StatusOK, data)
}
