package pool

import (
	_ "embed"
	"encoding/json"
	"math/rand"

	"github.com/DedS3t/monopoly-banker/app/models"
	"github.com/DedS3t/monopoly-banker/platform/board"
	uuid "github.com/satori/go.uuid"
)

// Provider deals ready-made opponents into a new table. It is fixture
// logic for solo play; the ledger engine never depends on it.
type Provider interface {
	Opponents(count int, usedIcons []string) []models.Player
}

//go:embed players.json
var playersJSON []byte

type rosterEntry struct {
	PlayerName string `json:"playerName"`
	PlayerIcon string `json:"playerIcon"`
	Balance    int    `json:"balance"`
	Properties []struct {
		Id        string `json:"id"`
		Mortgaged bool   `json:"mortgaged"`
	} `json:"properties"`
}

// StaticPool serves opponents from the bundled roster, holdings resolved
// against the board catalog.
type StaticPool struct {
	catalog []models.Property
	roster  []rosterEntry
}

func NewStaticPool(catalog []models.Property) *StaticPool {
	var roster []rosterEntry
	if err := json.Unmarshal(playersJSON, &roster); err != nil {
		panic(err)
	}
	return &StaticPool{catalog: catalog, roster: roster}
}

// Opponents deals up to count players whose icons are still free, in random
// order. Fewer than count come back when the roster runs short.
func (p *StaticPool) Opponents(count int, usedIcons []string) []models.Player {
	taken := make(map[string]bool, len(usedIcons))
	for _, icon := range usedIcons {
		taken[icon] = true
	}

	order := rand.Perm(len(p.roster))
	var opponents []models.Player
	for _, idx := range order {
		if len(opponents) == count {
			break
		}
		entry := p.roster[idx]
		if taken[entry.PlayerIcon] {
			continue
		}
		taken[entry.PlayerIcon] = true
		opponents = append(opponents, p.materialize(entry))
	}
	return opponents
}

func (p *StaticPool) materialize(entry rosterEntry) models.Player {
	player := models.Player{
		Id:         uuid.NewV4().String(),
		PlayerName: entry.PlayerName,
		PlayerIcon: entry.PlayerIcon,
		Balance:    entry.Balance,
		Status:     models.PlayerStatusActive,
		Properties: []models.Property{},
	}
	for _, holding := range entry.Properties {
		property, err := board.GetById(holding.Id, &p.catalog)
		if err != nil {
			continue
		}
		property.Houses = 0
		property.Mortgaged = holding.Mortgaged
		player.Properties = append(player.Properties, property)
	}
	return player
}
