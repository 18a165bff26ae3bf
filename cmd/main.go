package main

import (
	"os"

	"github.com/BakhatBug/Keto-Slim/config"
	"github.com/BakhatBug/Keto-Slim/controllers"
	"github.com/BakhatBug/Keto-Slim/routes"
	"github.com/BakhatBug/Keto-Slim/services"
	"github.com/BakhatBug/Keto-Slim/utils"
)

func main() {
	config.LoadEnv()
	db := config.InitDB()
	utils.InitS3()

	hub := services.NewOrderHub()
	productService := services.NewProductService(db)

	r := routes.SetupRouter(routes.Controllers{
		Auth:     controllers.NewAuthController(services.NewAuthService(db)),
		Forms:    controllers.NewFormController(services.NewFormService(db)),
		Results:  controllers.NewResultController(services.NewResultService(db)),
		Products: controllers.NewProductController(productService),
		Orders:   controllers.NewOrderController(services.NewOrderService(db, productService, hub)),
		Realtime: controllers.NewRealtimeController(hub),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
