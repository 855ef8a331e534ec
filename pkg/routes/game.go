package routes

import (
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/saimerit/monopoly-game/app/controllers"
)

// Protected is the bearer-token middleware shared by authenticated routes.
func Protected(secret string) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: []byte(secret),
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		},
	})
}

func GameRoutes(a *fiber.App, gc *controllers.GameController, protected fiber.Handler) {
	route := a.Group("/game")
	route.Get("/all", gc.GetAllAvailGames)
	route.Get("/verify", gc.VerifyGame)
	route.Post("/create", protected, gc.CreateGame)
	route.Get("/:id", protected, gc.GetGame)
	route.Get("/:id/balances", protected, gc.GetBalances)
	route.Post("/:id/join", protected, gc.JoinGame)
	route.Post("/:id/action", protected, gc.Action)
}
