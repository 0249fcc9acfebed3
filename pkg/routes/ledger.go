package routes

import (
	"github.com/DedS3t/monopoly-banker/app/controllers"
	"github.com/gofiber/fiber/v2"
)

func LedgerRoutes(a *fiber.App) {
	route := a.Group("/game/:id")
	route.Post("/transfer", controllers.Transfer)
	route.Post("/buy-property", controllers.BuyProperty)
	route.Post("/mortgage", controllers.MortgageProperty)
	route.Post("/unmortgage", controllers.UnmortgageProperty)
	route.Post("/buy-house", controllers.BuyHouse)
	route.Post("/bankruptcy", controllers.DeclareBankruptcy)
	route.Post("/trade", controllers.Trade)
	route.Get("/properties/unowned", controllers.UnownedProperties)
}
