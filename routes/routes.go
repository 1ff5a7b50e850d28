package routes

import (
	"github.com/Makai-Stern/shoppingify-api/config"
	"github.com/Makai-Stern/shoppingify-api/controllers"
	"github.com/Makai-Stern/shoppingify-api/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// Uploaded food images are served as static files.
	r.Static("/static", config.C.UploadDir)

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.GET("/logout", controllers.Logout)
		auth.GET("/whoami", controllers.WhoAmI)
		auth.POST("/password", middlewares.AuthMiddleware(), controllers.UpdatePassword)
	}

	users := r.Group("/users")
	users.Use(middlewares.AuthMiddleware())
	{
		users.GET("/:id", controllers.GetUser)
		users.PUT("/:id", controllers.UpdateUser)
		users.DELETE("/:id", controllers.DeleteUser)
	}

	foods := r.Group("/foods")
	foods.Use(middlewares.AuthMiddleware())
	{
		foods.GET("", controllers.ListFoods)
		foods.POST("", controllers.CreateFood)
		foods.GET("/:id", controllers.GetFood)
		foods.PUT("/:id", controllers.UpdateFood)
		foods.DELETE("/:id", controllers.DeleteFood)
	}

	categories := r.Group("/categories")
	categories.Use(middlewares.AuthMiddleware())
	{
		categories.GET("", controllers.ListCategories)
		categories.POST("", controllers.CreateCategory)
		categories.GET("/:id", controllers.GetCategory)
		categories.PUT("/:id", controllers.UpdateCategory)
		categories.DELETE("/:id", controllers.DeleteCategory)
	}

	carts := r.Group("/carts")
	carts.Use(middlewares.AuthMiddleware())
	{
		carts.GET("", controllers.ListCarts)
		carts.POST("", controllers.CreateCart)
		carts.GET("/:id", controllers.GetCart)
		carts.PUT("/:id", controllers.UpdateCart)
		carts.DELETE("/:id", controllers.DeleteCart)
	}

	return r
}
