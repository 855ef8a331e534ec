package controllers

import (
	"strings"

	jwt "github.com/form3tech-oss/jwt-go"
	"github.com/gofiber/fiber/v2"
	"github.com/saimerit/monopoly-game/app/models"
	"github.com/saimerit/monopoly-game/pkg/utils"
	uuid "github.com/satori/go.uuid"
)

const maxNameLength = 24

type AuthController struct {
	secret string
}

func NewAuthController(secret string) *AuthController {
	return &AuthController{secret: secret}
}

// Guest issues a token for a display name. Players have no accounts.
func (a *AuthController) Guest(c *fiber.Ctx) error {
	guestDto := new(models.GuestDto)
	if err := c.BodyParser(guestDto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	name := strings.TrimSpace(guestDto.Name)
	if name == "" || len(name) > maxNameLength {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name must be 1-24 characters"})
	}

	userId := uuid.NewV4().String()
	t, err := utils.GenerateGuestToken(a.secret, userId, name)
	if err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.JSON(fiber.Map{"access_token": t, "user_id": userId, "name": name})
}

func (a *AuthController) Cur(c *fiber.Ctx) error {
	userId, name, err := identity(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	return c.JSON(fiber.Map{"user_id": userId, "name": name})
}

func identity(c *fiber.Ctx) (string, string, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return "", "", utils.ErrInvalidToken
	}
	return utils.Identity(token)
}
