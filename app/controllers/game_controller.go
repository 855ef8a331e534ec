package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/saimerit/monopoly-game/app/engine"
	"github.com/saimerit/monopoly-game/app/models"
	"github.com/saimerit/monopoly-game/app/service"
	"github.com/saimerit/monopoly-game/platform/cache"
	"github.com/saimerit/monopoly-game/platform/logging"
	"github.com/saimerit/monopoly-game/platform/queries"
	"github.com/sirupsen/logrus"
)

type GameController struct {
	svc *service.GameService
	log *logrus.Entry
}

func NewGameController(svc *service.GameService) *GameController {
	return &GameController{svc: svc, log: logging.For("http")}
}

type actionDto struct {
	Action  string                 `json:"action"`
	Payload map[string]interface{} `json:"payload"`
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	userId, name, err := identity(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	gameCreateDto := new(models.GameCreateDto)
	if err := c.BodyParser(gameCreateDto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	g, err := gc.svc.CreateGame(c.Context(), userId, name, *gameCreateDto)
	if err != nil {
		return gc.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": g.Id, "game": g})
}

func (gc *GameController) GetAllAvailGames(c *fiber.Ctx) error {
	games, err := gc.svc.ListOpen(c.Context())
	if err != nil {
		return gc.fail(c, err)
	}
	for i := range games {
		games[i].Passcode = ""
	}
	return c.JSON(games)
}

func (gc *GameController) VerifyGame(c *fiber.Ctx) error {
	verifyGameDto := new(models.VerifyGameDto)
	if err := c.QueryParser(verifyGameDto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid query"})
	}

	record, err := gc.svc.Verify(c.Context(), verifyGameDto.Code)
	if err != nil {
		return c.JSON(fiber.Map{"status": false})
	}
	return c.JSON(fiber.Map{"status": true, "private": record.Passcode != "", "state": record.Status})
}

func (gc *GameController) JoinGame(c *fiber.Ctx) error {
	userId, name, err := identity(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	joinDto := new(models.JoinGameDto)
	if err := c.BodyParser(joinDto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	g, err := gc.svc.Join(c.Context(), c.Params("id"), userId, name, *joinDto)
	if err != nil {
		return gc.fail(c, err)
	}
	return c.JSON(g)
}

func (gc *GameController) GetGame(c *fiber.Ctx) error {
	g, err := gc.svc.State(c.Context(), c.Params("id"))
	if err != nil {
		return gc.fail(c, err)
	}
	return c.JSON(g)
}

func (gc *GameController) GetBalances(c *fiber.Ctx) error {
	balances, err := gc.svc.Balances(c.Context(), c.Params("id"))
	if err != nil {
		return gc.fail(c, err)
	}
	return c.JSON(balances)
}

// Action runs one named command for the authenticated player.
func (gc *GameController) Action(c *fiber.Ctx) error {
	userId, _, err := identity(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	dto := new(actionDto)
	if err := c.BodyParser(dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	g, events, err := gc.svc.Dispatch(c.Context(), c.Params("id"), userId, dto.Action, dto.Payload)
	if err != nil {
		return gc.fail(c, err)
	}
	return c.JSON(fiber.Map{"game": g, "events": events})
}

func (gc *GameController) fail(c *fiber.Ctx, err error) error {
	status := StatusFor(err)
	if status == fiber.StatusInternalServerError {
		gc.log.WithError(err).WithField("path", c.Path()).Error("request failed")
		return c.Status(status).JSON(fiber.Map{"error": "internal error"})
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

// StatusFor maps domain errors onto HTTP statuses.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, engine.ErrNotHost), errors.Is(err, engine.ErrNotYourTurn),
		errors.Is(err, engine.ErrNotOwner), errors.Is(err, engine.ErrNotTradeParty),
		errors.Is(err, service.ErrBadPasscode):
		return fiber.StatusForbidden
	case errors.Is(err, cache.ErrNotFound), errors.Is(err, queries.ErrGameNotFound),
		errors.Is(err, engine.ErrUnknownPlayer), errors.Is(err, engine.ErrTradeNotFound),
		errors.Is(err, engine.ErrUnknownProperty):
		return fiber.StatusNotFound
	case errors.Is(err, cache.ErrConflict):
		return fiber.StatusConflict
	case errors.Is(err, service.ErrUnknownAction), errors.Is(err, service.ErrBadPayload),
		engine.IsPrecondition(err):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}
