package auctionerrors

import "errors"

// Structure-level errors
var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrUnknownUser     = errors.New("user not found")
	ErrNoBids          = errors.New("no bids found for auction")
	ErrDuplicateKey    = errors.New("key already present in heap")
	ErrUnknownKey      = errors.New("key not present in heap")
	ErrUnknownID       = errors.New("id not present in group index")
	ErrLengthMismatch  = errors.New("ids and group labels differ in length")
)

// business logic errors
var (
	ErrInvalidItem      = errors.New("invalid item")
	ErrNoPurchaser      = errors.New("auction has no purchaser")
	ErrNoRecommendation = errors.New("no recommendation available")
)
