package ledger

import (
	"fmt"

	"github.com/DedS3t/monopoly-banker/app/models"
)

// CanBuildHouse is the pure predicate behind BuyHouse: standard property,
// unmortgaged, under the five-house cap, the whole color group owned by the
// player, and no sibling in the group with fewer houses (the even-build
// rule). The UI uses it to hide the action before it can fail.
func (e *Engine) CanBuildHouse(player *models.Player, property *models.Property) bool {
	if !property.IsStandard() || property.Mortgaged || property.Houses >= 5 || property.Color == "" {
		return false
	}

	groupSize := 0
	for _, catalogProperty := range e.catalog {
		if catalogProperty.Color == property.Color {
			groupSize++
		}
	}

	owned := 0
	for i := range player.Properties {
		sibling := &player.Properties[i]
		if sibling.Color != property.Color {
			continue
		}
		owned++
		if sibling.Houses < property.Houses {
			return false
		}
	}

	return owned == groupSize
}

// SettleBankruptcies is the invariant-restoring scan run after every
// mutation: any active player at or below zero with no unmortgaged property
// left goes bankrupt, in player-list order. Running it again on a settled
// game is a no-op, so it never fails and never duplicates history.
func (e *Engine) SettleBankruptcies(game *models.Game) []models.HistoryEntry {
	var entries []models.HistoryEntry
	for i := range game.Players {
		player := &game.Players[i]
		if !player.IsActive() || player.Balance > 0 || player.HasUnmortgagedProperty() {
			continue
		}
		player.Status = models.PlayerStatusBankrupt
		player.Balance = 0
		entry := newEntry(fmt.Sprintf("%s went bankrupt automatically.", player.PlayerName))
		game.PrependHistory(entry)
		entries = append(entries, entry)
	}
	return entries
}

func (e *Engine) ActivePlayers(game *models.Game) []*models.Player {
	var active []*models.Player
	for i := range game.Players {
		if game.Players[i].IsActive() {
			active = append(active, &game.Players[i])
		}
	}
	return active
}

// WinnerIfAny reports the last player standing once everyone else is out.
// The engine only detects the condition; marking the winner and ending the
// game is the caller's move.
func (e *Engine) WinnerIfAny(game *models.Game) *models.Player {
	if len(game.Players) <= 1 {
		return nil
	}
	active := e.ActivePlayers(game)
	if len(active) != 1 {
		return nil
	}
	return active[0]
}

// UnownedProperties is the catalog minus every property held by any player.
func (e *Engine) UnownedProperties(game *models.Game) []models.Property {
	owned := make(map[string]bool)
	for i := range game.Players {
		for _, property := range game.Players[i].Properties {
			owned[property.Id] = true
		}
	}

	var unowned []models.Property
	for _, property := range e.catalog {
		if !owned[property.Id] {
			unowned = append(unowned, property)
		}
	}
	return unowned
}
