package models

import "time"

const (
	GameStatusWaiting  = "waiting"
	GameStatusActive   = "active"
	GameStatusFinished = "finished"
)

const (
	GameModeClassic = "classic"
	GameModeFast    = "fast"
)

// MaxPlayers caps the table size.
const MaxPlayers = 6

// Game is the aggregate root for one match. The whole thing is serialized
// into the session store between requests; the ledger engine only ever sees
// a fully materialized value.
type Game struct {
	GameId   string         `json:"gameId"`
	QrCode   string         `json:"qrCode"`
	Status   string         `json:"status"`
	Players  []Player       `json:"players"`
	History  []HistoryEntry `json:"history"`
	GameMode string         `json:"gameMode"`
}

// HistoryEntry is an immutable audit record. Exactly one of Description or
// Trade is set. History is kept newest-first.
type HistoryEntry struct {
	Timestamp   int64         `json:"timestamp"`
	Description string        `json:"description,omitempty"`
	Trade       *TradePayload `json:"trade,omitempty"`
}

// NowMillis matches the epoch-millisecond timestamps the web client writes.
func NowMillis() int64 {
	return time.Now().UnixNano() / int64(time.Millisecond)
}

func NewHistoryEntry(description string) HistoryEntry {
	return HistoryEntry{Timestamp: NowMillis(), Description: description}
}

func (g *Game) FindPlayer(id string) *Player {
	for i := range g.Players {
		if g.Players[i].Id == id {
			return &g.Players[i]
		}
	}
	return nil
}

// PrependHistory keeps the newest entry first, matching how the history
// sheet renders it.
func (g *Game) PrependHistory(entry HistoryEntry) {
	g.History = append([]HistoryEntry{entry}, g.History...)
}

type GameCreateDto struct {
	PlayerName string `json:"playerName"`
	PlayerIcon string `json:"playerIcon"`
	GameMode   string `json:"gameMode"`
}

type GameJoinDto struct {
	GameId     string `json:"gameId"`
	PlayerName string `json:"playerName"`
	PlayerIcon string `json:"playerIcon"`
}

type VerifyGameDto struct {
	Code string `query:"code"`
}
