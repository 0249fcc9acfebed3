package controllers

import (
	"errors"

	"github.com/DedS3t/monopoly-banker/app/models"
	"github.com/DedS3t/monopoly-banker/platform/ledger"
	"github.com/DedS3t/monopoly-banker/platform/queries"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

func statusFor(err error) int {
	if errors.Is(err, ledger.ErrPlayerNotFound) || errors.Is(err, ledger.ErrPropertyNotFound) {
		return fiber.StatusNotFound
	}
	return fiber.StatusBadRequest
}

// runAction is the per-request loop around every ledger operation: load the
// aggregate, apply the operation, run the bankruptcy scan, check for a
// winner, persist, respond. The engine stays pure; this is the single
// writer the session model assumes.
func runAction(c *fiber.Ctx, apply func(game *models.Game) error) error {
	conn := Pool.Get()
	defer conn.Close()

	game, err := queries.GetGame(c.Params("id"), &conn)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "game not found"})
	}
	if game.Status == models.GameStatusFinished {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "game is over"})
	}

	if err := apply(game); err != nil {
		logrus.Debugf("rejected action on game %s: %v", game.GameId, err)
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	Engine.SettleBankruptcies(game)

	winner := Engine.WinnerIfAny(game)
	if winner != nil {
		winner.Status = models.PlayerStatusWinner
		game.Status = models.GameStatusFinished
	}

	if err := queries.SaveGame(game, &conn); err != nil {
		logrus.Errorf("failed saving game %s: %v", game.GameId, err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	resp := fiber.Map{"game": game}
	if winner != nil {
		resp["winner"] = winner
	}
	return c.JSON(resp)
}

func Transfer(c *fiber.Ctx) error {
	dto := new(models.TransferDto)
	if err := c.BodyParser(dto); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	return runAction(c, func(game *models.Game) error {
		_, err := Engine.TransferFunds(game, dto.PlayerId, ledger.TransferKind(dto.Kind), dto.CounterpartId, dto.Amount)
		return err
	})
}

func BuyProperty(c *fiber.Ctx) error {
	dto := new(models.PropertyActionDto)
	if err := c.BodyParser(dto); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	return runAction(c, func(game *models.Game) error {
		_, err := Engine.BuyProperty(game, dto.PlayerId, dto.PropertyId)
		return err
	})
}

func MortgageProperty(c *fiber.Ctx) error {
	dto := new(models.PropertyActionDto)
	if err := c.BodyParser(dto); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	return runAction(c, func(game *models.Game) error {
		_, err := Engine.MortgageProperty(game, dto.PlayerId, dto.PropertyId)
		return err
	})
}

func UnmortgageProperty(c *fiber.Ctx) error {
	dto := new(models.PropertyActionDto)
	if err := c.BodyParser(dto); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	return runAction(c, func(game *models.Game) error {
		_, err := Engine.UnmortgageProperty(game, dto.PlayerId, dto.PropertyId)
		return err
	})
}

func BuyHouse(c *fiber.Ctx) error {
	dto := new(models.PropertyActionDto)
	if err := c.BodyParser(dto); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	return runAction(c, func(game *models.Game) error {
		_, err := Engine.BuyHouse(game, dto.PlayerId, dto.PropertyId)
		return err
	})
}

func DeclareBankruptcy(c *fiber.Ctx) error {
	dto := new(models.BankruptcyDto)
	if err := c.BodyParser(dto); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	return runAction(c, func(game *models.Game) error {
		_, err := Engine.DeclareBankruptcy(game, dto.PlayerId)
		return err
	})
}

func Trade(c *fiber.Ctx) error {
	offer := new(models.TradeOffer)
	if err := c.BodyParser(offer); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	return runAction(c, func(game *models.Game) error {
		_, err := Engine.ExecuteTrade(game, *offer)
		return err
	})
}

func UnownedProperties(c *fiber.Ctx) error {
	conn := Pool.Get()
	defer conn.Close()

	game, err := queries.GetGame(c.Params("id"), &conn)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "game not found"})
	}
	return c.JSON(Engine.UnownedProperties(game))
}
