package controllers

import (
	"net/url"
	"os"
	"strings"

	"github.com/DedS3t/monopoly-banker/app/models"
	"github.com/DedS3t/monopoly-banker/pkg"
	"github.com/DedS3t/monopoly-banker/platform/board"
	"github.com/DedS3t/monopoly-banker/platform/cache"
	"github.com/DedS3t/monopoly-banker/platform/ledger"
	"github.com/DedS3t/monopoly-banker/platform/pool"
	"github.com/DedS3t/monopoly-banker/platform/queries"
	"github.com/gofiber/fiber/v2"
	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"
)

const startingBalance = 1500

// opponentCount fills the host's table for solo play.
const opponentCount = 3

var (
	Board   = board.LoadProperties()
	Engine  = ledger.NewEngine(Board)
	Pool    = cache.CreateRedisPool()
	Players pool.Provider = pool.NewStaticPool(Board)
)

func qrCodeURL(gameId string) string {
	appURL := os.Getenv("APP_URL")
	if appURL == "" {
		appURL = "http://localhost:3000"
	}
	joinURL := appURL + "/join?gameId=" + gameId
	return "https://api.qrserver.com/v1/create-qr-code/?size=150x150&data=" + url.QueryEscape(joinURL)
}

func CreateGame(c *fiber.Ctx) error {
	dto := new(models.GameCreateDto)
	if err := c.BodyParser(dto); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	name := strings.TrimSpace(dto.PlayerName)
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "player name is required"})
	}
	if !models.ValidIcon(dto.PlayerIcon) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown player icon"})
	}
	mode := dto.GameMode
	if mode != models.GameModeFast {
		mode = models.GameModeClassic
	}

	host := models.Player{
		Id:         uuid.NewV4().String(),
		PlayerName: name,
		PlayerIcon: dto.PlayerIcon,
		Balance:    startingBalance,
		Status:     models.PlayerStatusActive,
		Properties: []models.Property{},
		IsHost:     true,
	}

	gameId := pkg.RandString(8)
	game := &models.Game{
		GameId:   gameId,
		QrCode:   qrCodeURL(gameId),
		Status:   models.GameStatusActive,
		Players:  append([]models.Player{host}, Players.Opponents(opponentCount, []string{host.PlayerIcon})...),
		GameMode: mode,
	}
	game.PrependHistory(models.NewHistoryEntry("The game started."))

	conn := Pool.Get()
	defer conn.Close()
	if err := queries.SaveGame(game, &conn); err != nil {
		logrus.Errorf("failed saving game %s: %v", gameId, err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.JSON(fiber.Map{"game": game, "playerId": host.Id})
}

func VerifyGame(c *fiber.Ctx) error {
	dto := new(models.VerifyGameDto)
	if err := c.QueryParser(dto); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	conn := Pool.Get()
	defer conn.Close()
	return c.JSON(fiber.Map{"status": queries.VerifyGame(dto.Code, &conn)})
}

func JoinGame(c *fiber.Ctx) error {
	dto := new(models.GameJoinDto)
	if err := c.BodyParser(dto); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	conn := Pool.Get()
	defer conn.Close()
	game, err := queries.GetGame(dto.GameId, &conn)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "game not found"})
	}

	if game.Status == models.GameStatusFinished {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "game is over"})
	}
	if len(game.Players) >= models.MaxPlayers {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "table is full"})
	}

	name := strings.TrimSpace(dto.PlayerName)
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "player name is required"})
	}
	if !models.ValidIcon(dto.PlayerIcon) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown player icon"})
	}
	for i := range game.Players {
		if strings.EqualFold(game.Players[i].PlayerName, name) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "player name already taken"})
		}
		if game.Players[i].PlayerIcon == dto.PlayerIcon {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "icon already taken"})
		}
	}

	player := models.Player{
		Id:         uuid.NewV4().String(),
		PlayerName: name,
		PlayerIcon: dto.PlayerIcon,
		Balance:    startingBalance,
		Status:     models.PlayerStatusActive,
		Properties: []models.Property{},
	}
	game.Players = append(game.Players, player)
	game.PrependHistory(models.NewHistoryEntry(name + " joined the game."))

	if err := queries.SaveGame(game, &conn); err != nil {
		logrus.Errorf("failed saving game %s: %v", game.GameId, err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.JSON(fiber.Map{"game": game, "playerId": player.Id})
}

func GetGame(c *fiber.Ctx) error {
	conn := Pool.Get()
	defer conn.Close()
	game, err := queries.GetGame(c.Params("id"), &conn)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "game not found"})
	}
	return c.JSON(game)
}
