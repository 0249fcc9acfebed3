package models

const (
	PropertyTypeStandard = "property"
	PropertyTypeRailroad = "railroad"
	PropertyTypeUtility  = "utility"
)

// Property is one ownable board space. Players hold their own copies once
// bought or traded; Mortgaged and Houses are per-copy state. Houses only
// means anything for the standard type (5 is a hotel).
type Property struct {
	Id            string `json:"id"`
	PropertyName  string `json:"propertyName"`
	Price         int    `json:"price"`
	MortgageValue int    `json:"mortgageValue"`
	Color         string `json:"color"`
	Type          string `json:"type"`
	Houses        int    `json:"houses,omitempty"`
	HouseCost     int    `json:"houseCost,omitempty"`
	Mortgaged     bool   `json:"mortgaged"`
}

func (p *Property) IsStandard() bool {
	return p.Type == PropertyTypeStandard
}
