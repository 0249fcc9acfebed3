package ledger

import (
	"fmt"
	"math"

	"github.com/DedS3t/monopoly-banker/app/models"
)

type TransferKind string

const (
	TransferPayBank       TransferKind = "pay-bank"
	TransferCollectBank   TransferKind = "collect-bank"
	TransferPayPlayer     TransferKind = "pay-player"
	TransferCollectPlayer TransferKind = "collect-player"
)

// Engine applies the banking rules to a Game aggregate. It is stateless
// between calls; the only thing it holds is the read-only board catalog.
// Every operation checks all of its preconditions before the first write and
// prepends exactly one history entry when it succeeds.
type Engine struct {
	catalog []models.Property
}

func NewEngine(catalog []models.Property) *Engine {
	return &Engine{catalog: catalog}
}

func newEntry(description string) models.HistoryEntry {
	return models.NewHistoryEntry(description)
}

// UnmortgageCost is the mortgage value plus 10% interest, rounded to the
// nearest whole dollar.
func UnmortgageCost(mortgageValue int) int {
	return int(math.Round(float64(mortgageValue) * 1.1))
}

func (e *Engine) activePlayer(game *models.Game, id string) (*models.Player, error) {
	player := game.FindPlayer(id)
	if player == nil {
		return nil, fmt.Errorf("%w: %s", ErrPlayerNotFound, id)
	}
	if !player.IsActive() {
		return nil, fmt.Errorf("%w: %s is not active", ErrPlayerNotEligible, player.PlayerName)
	}
	return player, nil
}

// TransferFunds covers the four manual transactions: pay the bank, collect
// from the bank, pay a player, collect from a player. The bank is an
// inexhaustible counterparty, so collecting from it is never balance-checked;
// collecting from another player is. That asymmetry is deliberate.
func (e *Engine) TransferFunds(game *models.Game, actorId string, kind TransferKind, counterpartId string, amount int) (models.HistoryEntry, error) {
	if amount <= 0 {
		return models.HistoryEntry{}, fmt.Errorf("%w: %d", ErrInvalidAmount, amount)
	}

	actor, err := e.activePlayer(game, actorId)
	if err != nil {
		return models.HistoryEntry{}, err
	}

	var counterpart *models.Player
	if kind == TransferPayPlayer || kind == TransferCollectPlayer {
		counterpart, err = e.activePlayer(game, counterpartId)
		if err != nil {
			return models.HistoryEntry{}, err
		}
		if counterpart.Id == actor.Id {
			return models.HistoryEntry{}, fmt.Errorf("%w: cannot transact with yourself", ErrPlayerNotEligible)
		}
	}

	var description string
	switch kind {
	case TransferPayBank:
		if actor.Balance < amount {
			return models.HistoryEntry{}, fmt.Errorf("%w: %s has $%d", ErrInsufficientFunds, actor.PlayerName, actor.Balance)
		}
		actor.Balance -= amount
		description = fmt.Sprintf("%s paid $%d to the bank.", actor.PlayerName, amount)
	case TransferCollectBank:
		actor.Balance += amount
		description = fmt.Sprintf("%s collected $%d from the bank.", actor.PlayerName, amount)
	case TransferPayPlayer:
		if actor.Balance < amount {
			return models.HistoryEntry{}, fmt.Errorf("%w: %s has $%d", ErrInsufficientFunds, actor.PlayerName, actor.Balance)
		}
		actor.Balance -= amount
		counterpart.Balance += amount
		description = fmt.Sprintf("%s paid $%d to %s.", actor.PlayerName, amount, counterpart.PlayerName)
	case TransferCollectPlayer:
		if counterpart.Balance < amount {
			return models.HistoryEntry{}, fmt.Errorf("%w: %s has $%d", ErrInsufficientFunds, counterpart.PlayerName, counterpart.Balance)
		}
		counterpart.Balance -= amount
		actor.Balance += amount
		description = fmt.Sprintf("%s collected $%d from %s.", actor.PlayerName, amount, counterpart.PlayerName)
	default:
		return models.HistoryEntry{}, fmt.Errorf("%w: unknown transfer kind %q", ErrPreconditionFailed, kind)
	}

	entry := newEntry(description)
	game.PrependHistory(entry)
	return entry, nil
}

// BuyProperty sells an unowned catalog property to the player at list price.
// The player receives their own copy with no houses and no mortgage.
func (e *Engine) BuyProperty(game *models.Game, playerId string, propertyId string) (models.HistoryEntry, error) {
	player, err := e.activePlayer(game, playerId)
	if err != nil {
		return models.HistoryEntry{}, err
	}

	property, err := e.catalogProperty(propertyId)
	if err != nil {
		return models.HistoryEntry{}, err
	}

	for i := range game.Players {
		if game.Players[i].OwnsProperty(propertyId) != nil {
			return models.HistoryEntry{}, fmt.Errorf("%w: %s is already owned", ErrPreconditionFailed, property.PropertyName)
		}
	}

	if player.Balance < property.Price {
		return models.HistoryEntry{}, fmt.Errorf("%w: %s costs $%d", ErrInsufficientFunds, property.PropertyName, property.Price)
	}

	copy := property
	copy.Houses = 0
	copy.Mortgaged = false
	player.Balance -= property.Price
	player.Properties = append(player.Properties, copy)

	entry := newEntry(fmt.Sprintf("%s bought %s for $%d.", player.PlayerName, property.PropertyName, property.Price))
	game.PrependHistory(entry)
	return entry, nil
}

// MortgageProperty credits the mortgage value and flags the copy. A property
// with houses can still be mortgaged; the reference ruleset allows it.
func (e *Engine) MortgageProperty(game *models.Game, playerId string, propertyId string) (models.HistoryEntry, error) {
	player, err := e.activePlayer(game, playerId)
	if err != nil {
		return models.HistoryEntry{}, err
	}

	property := player.OwnsProperty(propertyId)
	if property == nil {
		return models.HistoryEntry{}, fmt.Errorf("%w: %s", ErrPropertyNotOwned, propertyId)
	}
	if property.Mortgaged {
		return models.HistoryEntry{}, fmt.Errorf("%w: %s is already mortgaged", ErrPreconditionFailed, property.PropertyName)
	}

	player.Balance += property.MortgageValue
	property.Mortgaged = true

	entry := newEntry(fmt.Sprintf("%s mortgaged %s for $%d.", player.PlayerName, property.PropertyName, property.MortgageValue))
	game.PrependHistory(entry)
	return entry, nil
}

func (e *Engine) UnmortgageProperty(game *models.Game, playerId string, propertyId string) (models.HistoryEntry, error) {
	player, err := e.activePlayer(game, playerId)
	if err != nil {
		return models.HistoryEntry{}, err
	}

	property := player.OwnsProperty(propertyId)
	if property == nil {
		return models.HistoryEntry{}, fmt.Errorf("%w: %s", ErrPropertyNotOwned, propertyId)
	}
	if !property.Mortgaged {
		return models.HistoryEntry{}, fmt.Errorf("%w: %s is not mortgaged", ErrPreconditionFailed, property.PropertyName)
	}

	cost := UnmortgageCost(property.MortgageValue)
	if player.Balance < cost {
		return models.HistoryEntry{}, fmt.Errorf("%w: lifting the mortgage costs $%d", ErrInsufficientFunds, cost)
	}

	player.Balance -= cost
	property.Mortgaged = false

	entry := newEntry(fmt.Sprintf("%s paid off the mortgage on %s for $%d.", player.PlayerName, property.PropertyName, cost))
	game.PrependHistory(entry)
	return entry, nil
}

// BuyHouse adds one house (the fifth being a hotel) to a standard property.
// Gated on CanBuildHouse, so a group that is not fully owned or that would
// break the even-build rule rejects before any money moves.
func (e *Engine) BuyHouse(game *models.Game, playerId string, propertyId string) (models.HistoryEntry, error) {
	player, err := e.activePlayer(game, playerId)
	if err != nil {
		return models.HistoryEntry{}, err
	}

	property := player.OwnsProperty(propertyId)
	if property == nil {
		return models.HistoryEntry{}, fmt.Errorf("%w: %s", ErrPropertyNotOwned, propertyId)
	}

	if !e.CanBuildHouse(player, property) {
		return models.HistoryEntry{}, fmt.Errorf("%w: cannot build on %s", ErrPreconditionFailed, property.PropertyName)
	}

	if player.Balance < property.HouseCost {
		return models.HistoryEntry{}, fmt.Errorf("%w: a house on %s costs $%d", ErrInsufficientFunds, property.PropertyName, property.HouseCost)
	}

	player.Balance -= property.HouseCost
	property.Houses++

	entry := newEntry(fmt.Sprintf("%s bought a house on %s.", player.PlayerName, property.PropertyName))
	game.PrependHistory(entry)
	return entry, nil
}

// DeclareBankruptcy is terminal. The balance is zeroed; holdings stay
// attached to the bankrupt player and are frozen with them.
func (e *Engine) DeclareBankruptcy(game *models.Game, playerId string) (models.HistoryEntry, error) {
	player := game.FindPlayer(playerId)
	if player == nil {
		return models.HistoryEntry{}, fmt.Errorf("%w: %s", ErrPlayerNotFound, playerId)
	}
	if !player.IsActive() {
		return models.HistoryEntry{}, fmt.Errorf("%w: %s is not active", ErrPlayerNotEligible, player.PlayerName)
	}

	player.Status = models.PlayerStatusBankrupt
	player.Balance = 0

	entry := newEntry(fmt.Sprintf("%s declared bankruptcy.", player.PlayerName))
	game.PrependHistory(entry)
	return entry, nil
}

func (e *Engine) catalogProperty(id string) (models.Property, error) {
	for _, property := range e.catalog {
		if property.Id == id {
			return property, nil
		}
	}
	return models.Property{}, fmt.Errorf("%w: %s", ErrPropertyNotFound, id)
}
