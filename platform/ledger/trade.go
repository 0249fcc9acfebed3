package ledger

import (
	"fmt"

	"github.com/DedS3t/monopoly-banker/app/models"
)

// ExecuteTrade settles a bilateral offer atomically: money and properties
// move in both directions or nothing moves at all. Properties carrying
// houses are not tradeable. Transferred copies keep their mortgage state.
// The history entry holds the structured offer rather than a description.
func (e *Engine) ExecuteTrade(game *models.Game, offer models.TradeOffer) (models.HistoryEntry, error) {
	if offer.FromPlayerId == offer.ToPlayerId {
		return models.HistoryEntry{}, fmt.Errorf("%w: cannot trade with yourself", ErrPlayerNotEligible)
	}
	if offer.MoneyOffered < 0 || offer.MoneyRequested < 0 {
		return models.HistoryEntry{}, fmt.Errorf("%w: trade money cannot be negative", ErrInvalidAmount)
	}

	from, err := e.activePlayer(game, offer.FromPlayerId)
	if err != nil {
		return models.HistoryEntry{}, err
	}
	to, err := e.activePlayer(game, offer.ToPlayerId)
	if err != nil {
		return models.HistoryEntry{}, err
	}

	if from.Balance < offer.MoneyOffered {
		return models.HistoryEntry{}, fmt.Errorf("%w: %s has $%d", ErrInsufficientFunds, from.PlayerName, from.Balance)
	}
	if to.Balance < offer.MoneyRequested {
		return models.HistoryEntry{}, fmt.Errorf("%w: %s has $%d", ErrInsufficientFunds, to.PlayerName, to.Balance)
	}

	offeredIds, err := tradeableIds(from, offer.PropertiesOffered)
	if err != nil {
		return models.HistoryEntry{}, err
	}
	requestedIds, err := tradeableIds(to, offer.PropertiesRequested)
	if err != nil {
		return models.HistoryEntry{}, err
	}

	from.Balance += offer.MoneyRequested - offer.MoneyOffered
	to.Balance += offer.MoneyOffered - offer.MoneyRequested

	offered := removeProperties(from, offeredIds)
	requested := removeProperties(to, requestedIds)
	from.Properties = append(from.Properties, requested...)
	to.Properties = append(to.Properties, offered...)

	entry := models.HistoryEntry{
		Timestamp: models.NowMillis(),
		Trade: &models.TradePayload{
			FromPlayerId: from.Id,
			ToPlayerId:   to.Id,
			Offer:        offer,
		},
	}
	game.PrependHistory(entry)
	return entry, nil
}

// tradeableIds checks that every listed property really sits in the owner's
// holdings, carries no houses, and appears only once.
func tradeableIds(owner *models.Player, listed []models.Property) (map[string]bool, error) {
	ids := make(map[string]bool, len(listed))
	for _, wanted := range listed {
		if ids[wanted.Id] {
			return nil, fmt.Errorf("%w: %s listed twice", ErrInvalidOffer, wanted.Id)
		}
		held := owner.OwnsProperty(wanted.Id)
		if held == nil {
			return nil, fmt.Errorf("%w: %s does not own %s", ErrInvalidOffer, owner.PlayerName, wanted.Id)
		}
		if held.Houses > 0 {
			return nil, fmt.Errorf("%w: %s has houses built", ErrInvalidOffer, held.PropertyName)
		}
		ids[wanted.Id] = true
	}
	return ids, nil
}

// removeProperties pulls the listed copies out of the owner's holdings and
// returns them as held, mortgage flags included.
func removeProperties(owner *models.Player, ids map[string]bool) []models.Property {
	var removed, kept []models.Property
	for _, property := range owner.Properties {
		if ids[property.Id] {
			removed = append(removed, property)
		} else {
			kept = append(kept, property)
		}
	}
	owner.Properties = kept
	return removed
}
