package main

import (
	"fmt"
	"log"

	"github.com/Makai-Stern/shoppingify-api/config"
	"github.com/Makai-Stern/shoppingify-api/routes"
	"github.com/Makai-Stern/shoppingify-api/services"
	"github.com/Makai-Stern/shoppingify-api/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.Load()
	config.InitDB()

	if config.C.S3Bucket != "" {
		store, err := utils.NewS3Store()
		if err != nil {
			log.Fatalf("Failed to initialize S3 store: %v", err)
		}
		services.Images = store
	} else {
		store, err := utils.NewDiskStore(config.C.UploadDir)
		if err != nil {
			log.Fatalf("Failed to initialize upload dir: %v", err)
		}
		services.Images = store
	}

	if !config.C.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	r := routes.SetupRouter()
	r.Run(fmt.Sprintf("%s:%d", config.C.Host, config.C.Port))
}
