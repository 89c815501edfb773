package main

import (
	"antuf/config"
	"antuf/database"
	articleRoutes "antuf/routers/articleRoutes"
	authRoutes "antuf/routers/authRoutes"
	cardRoutes "antuf/routers/cardRoutes"
	catalogRoutes "antuf/routers/catalogRoutes"
	chatRoutes "antuf/routers/chatRoutes"
	donationRoutes "antuf/routers/donationRoutes"
	integrationRoutes "antuf/routers/integrationRoutes"
	ngoRoutes "antuf/routers/ngoRoutes"
	userProfileRoutes "antuf/routers/userRoutes"
	"antuf/utils"

	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	userProfileRoutes.SetupUserRoutes(app)
	articleRoutes.SetupArticleRoutes(app)
	catalogRoutes.SetupCatalogRoutes(app)
	cardRoutes.SetupCardRoutes(app)
	chatRoutes.SetupChatRoutes(app)
	donationRoutes.SetupDonationRoutes(app)
	ngoRoutes.SetupNgoRoutes(app)
	integrationRoutes.SetupIntegrationRoutes(app)

	utils.StartSchedulers()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
