package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/saimerit/monopoly-game/app/controllers"
)

func AuthRoutes(a *fiber.App, auth *controllers.AuthController, protected fiber.Handler) {
	route := a.Group("/user")

	route.Post("/guest", auth.Guest)
	route.Get("/cur", protected, auth.Cur)
}
