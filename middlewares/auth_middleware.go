package middlewares

import (
	"net/http"
	"strings"

	"github.com/Makai-Stern/shoppingify-api/config"
	"github.com/Makai-Stern/shoppingify-api/models"
	"github.com/Makai-Stern/shoppingify-api/utils"

	"github.com/gin-gonic/gin"
)

// TokenCookie is the session cookie carrying the signed credential.
const TokenCookie = "token"

// ClearTokenCookie removes the session cookie from the client.
func ClearTokenCookie(c *gin.Context) {
	c.SetCookie(TokenCookie, "", -1, "/", "", false, true)
}

// SetTokenCookie stores the session credential as an httponly cookie.
func SetTokenCookie(c *gin.Context, token string) {
	maxAge := config.C.JWTExpireHours * 3600
	c.SetCookie(TokenCookie, token, maxAge, "/", "", false, true)
}

// AuthMiddleware resolves the current user from the session cookie (or a
// Bearer header) and stores it in the request context. A missing or invalid
// credential clears the cookie and aborts the request.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(TokenCookie)
		if err != nil || tokenString == "" {
			if authHeader := c.GetHeader("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
				tokenString = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}
		if tokenString == "" {
			ClearTokenCookie(c)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not Authorized."})
			return
		}

		userID, err := utils.ParseJWT(tokenString)
		if err != nil {
			ClearTokenCookie(c)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not Authorized."})
			return
		}

		var user models.User
		if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
			ClearTokenCookie(c)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not Authorized."})
			return
		}

		c.Set("currentUser", &user)
		c.Set("userID", user.ID)

		c.Next()
	}
}

// CurrentUser pulls the authenticated user out of the gin context.
func CurrentUser(c *gin.Context) *models.User {
	user, _ := c.MustGet("currentUser").(*models.User)
	return user
}
