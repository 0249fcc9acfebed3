package models

const (
	PlayerStatusActive   = "active"
	PlayerStatusBankrupt = "bankrupt"
	PlayerStatusWinner   = "winner"
)

// PlayerIcons is the fixed icon set. One icon per player within a game,
// enforced at join time.
var PlayerIcons = []string{"top-hat", "car", "shoe", "vacuum", "wheelbarrow", "ship"}

type Player struct {
	Id         string     `json:"id"`
	PlayerName string     `json:"playerName"`
	PlayerIcon string     `json:"playerIcon"`
	Balance    int        `json:"balance"`
	Status     string     `json:"status"`
	Properties []Property `json:"properties"`
	IsHost     bool       `json:"isHost"`
}

func (p *Player) IsActive() bool {
	return p.Status == PlayerStatusActive
}

// OwnsProperty returns the player's copy of the property, or nil.
func (p *Player) OwnsProperty(propertyId string) *Property {
	for i := range p.Properties {
		if p.Properties[i].Id == propertyId {
			return &p.Properties[i]
		}
	}
	return nil
}

// HasUnmortgagedProperty reports whether any holding is still unmortgaged.
// A player at or below zero with nothing left to mortgage is out of the game.
func (p *Player) HasUnmortgagedProperty() bool {
	for i := range p.Properties {
		if !p.Properties[i].Mortgaged {
			return true
		}
	}
	return false
}

func ValidIcon(icon string) bool {
	for _, name := range PlayerIcons {
		if name == icon {
			return true
		}
	}
	return false
}
