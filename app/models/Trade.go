package models

// TradeOffer is a bilateral exchange. Trades settle the moment they are
// proposed; there is no pending-offer state carried between turns.
type TradeOffer struct {
	FromPlayerId        string     `json:"fromPlayerId"`
	ToPlayerId          string     `json:"toPlayerId"`
	PropertiesOffered   []Property `json:"propertiesOffered"`
	MoneyOffered        int        `json:"moneyOffered"`
	PropertiesRequested []Property `json:"propertiesRequested"`
	MoneyRequested      int        `json:"moneyRequested"`
}

// TradePayload is the structured history record for an executed trade, so
// both sides' gains and losses can be rendered later.
type TradePayload struct {
	FromPlayerId string     `json:"fromPlayerId"`
	ToPlayerId   string     `json:"toPlayerId"`
	Offer        TradeOffer `json:"offer"`
}

// OfferValue sums the mortgage values of one side's properties plus its
// money. Display-only; the engine never enforces trade fairness.
func OfferValue(properties []Property, money int) int {
	total := money
	for _, p := range properties {
		total += p.MortgageValue
	}
	return total
}
