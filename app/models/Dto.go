package models

type TransferDto struct {
	PlayerId      string `json:"playerId"`
	Kind          string `json:"kind"`
	CounterpartId string `json:"counterpartId"`
	Amount        int    `json:"amount"`
}

type PropertyActionDto struct {
	PlayerId   string `json:"playerId"`
	PropertyId string `json:"propertyId"`
}

type BankruptcyDto struct {
	PlayerId string `json:"playerId"`
}
