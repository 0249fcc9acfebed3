package ledger

import "errors"

// Every operation validates against these before touching the game. On any
// failure the aggregate is left exactly as it was.
var (
	ErrInvalidAmount      = errors.New("amount must be a positive whole number")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrPlayerNotFound     = errors.New("player not found")
	ErrPropertyNotFound   = errors.New("property not found")
	ErrPlayerNotEligible  = errors.New("player not eligible")
	ErrPropertyNotOwned   = errors.New("property not owned by player")
	ErrInvalidOffer       = errors.New("invalid trade offer")
	ErrPreconditionFailed = errors.New("precondition failed")
)
