package main

import (
	"log"

	"github.com/devops-squad/wishlists/config"
	"github.com/devops-squad/wishlists/controllers"
	"github.com/devops-squad/wishlists/repository"
	"github.com/devops-squad/wishlists/routes"
	"github.com/devops-squad/wishlists/utils"
)

func main() {
	// Initialize logger
	if err := utils.InitLogger(); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	// Load environment variables
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("Error loading config: %v", err)
		log.Fatal("Error loading config:", err)
	}

	// Initialize database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		utils.LogError("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database:", err)
	}

	// Wire repositories into the route layer
	wishlists := repository.NewWishlistRepository(db)
	items := repository.NewWishlistItemRepository(db)
	wc := controllers.NewWishlistController(wishlists)
	ic := controllers.NewWishlistItemController(wishlists, items)

	router := routes.SetupRouter(wc, ic)

	utils.LogInfo("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		utils.LogError("Error starting server: %v", err)
		log.Fatal("Error starting server:", err)
	}
}
