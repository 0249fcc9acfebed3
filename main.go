package main

import (
	"os"

	"github.com/DedS3t/monopoly-banker/pkg/routes"
	"github.com/DedS3t/monopoly-banker/platform/logging"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"
)

func main() {
	logging.Init()

	app := fiber.New()

	app.Use(cors.New())
	routes.GameRoutes(app)
	routes.LedgerRoutes(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "4101"
	}
	logrus.Infof("listening on :%s", port)
	if err := app.Listen(":" + port); err != nil {
		logrus.Fatal(err)
	}
}
