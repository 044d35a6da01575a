package economy

import "errors"

// Outcome errors. They describe why an action was refused and never leave
// the state partially changed.
var (
	ErrInsufficientCoins = errors.New("economy: not enough coins")
	ErrAlreadyOwned      = errors.New("economy: already owned")
	ErrUnknownOffer      = errors.New("economy: unknown offer")
	ErrUnknownArea       = errors.New("economy: unknown area")
	ErrAreaLocked        = errors.New("economy: area locked")
	ErrNothingToSell     = errors.New("economy: nothing to sell")
	ErrBagFull           = errors.New("economy: bag is full")
)
