package controllers

import (
	"net/http"

	"github.com/Makai-Stern/shoppingify-api/config"
	"github.com/Makai-Stern/shoppingify-api/middlewares"
	"github.com/Makai-Stern/shoppingify-api/models"
	"github.com/Makai-Stern/shoppingify-api/services"
	"github.com/Makai-Stern/shoppingify-api/utils"

	"github.com/gin-gonic/gin"
)

type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password" binding:"required"`
}

type PasswordInput struct {
	Password    string `json:"password" binding:"required"`
	NewPassword string `json:"newPassword"`
}

func Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.RegisterUser(input.Email, input.Username, input.Password)
	if err != nil {
		respondServiceError(c, err, "User")
		return
	}

	c.JSON(http.StatusCreated, user.ToMap())
}

func Login(c *gin.Context) {
	// A stale session cookie is cleared before re-authenticating.
	if token, err := c.Cookie(middlewares.TokenCookie); err == nil && token != "" {
		middlewares.ClearTokenCookie(c)
	}

	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": services.ErrInvalidCredentials.Error()})
		return
	}

	user, token, err := services.AuthenticateUser(input.Email, input.Username, input.Password)
	if err != nil {
		respondServiceError(c, err, "User")
		return
	}

	middlewares.SetTokenCookie(c, token)
	c.JSON(http.StatusOK, user.ToMap())
}

func Logout(c *gin.Context) {
	middlewares.ClearTokenCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Success"})
}

// WhoAmI resolves the session cookie itself instead of going through the auth
// middleware so an anonymous caller gets the cookie cleared with a 403 rather
// than a 401.
func WhoAmI(c *gin.Context) {
	tokenString, err := c.Cookie(middlewares.TokenCookie)
	if err != nil || tokenString == "" {
		middlewares.ClearTokenCookie(c)
		c.JSON(http.StatusForbidden, gin.H{"error": "Not Authorized."})
		return
	}

	userID, err := utils.ParseJWT(tokenString)
	if err != nil {
		middlewares.ClearTokenCookie(c)
		c.JSON(http.StatusForbidden, gin.H{"error": "Not Authorized."})
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		middlewares.ClearTokenCookie(c)
		c.JSON(http.StatusForbidden, gin.H{"error": "Not Authorized."})
		return
	}

	c.JSON(http.StatusOK, user.ToMap())
}

func UpdatePassword(c *gin.Context) {
	var input PasswordInput
	if err := c.ShouldBindJSON(&input); err != nil || input.NewPassword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Changes could not be processed."})
		return
	}

	user := middlewares.CurrentUser(c)
	if err := services.ChangePassword(user, input.Password, input.NewPassword); err != nil {
		respondServiceError(c, err, "User")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Success, password updated."})
}
