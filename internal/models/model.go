package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Coordinates is a GPS position in decimal degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// User represents a participant in the marketplace
type User struct {
	UserID       string      `json:"user_id"`
	FamilyName   string      `json:"family_name"`
	FirstName    string      `json:"first_name"`
	PasswordHash []byte      `json:"-"`
	Coords       Coordinates `json:"coords"`
	Address      string      `json:"address"`

	// Balance is signed: losing-bid refunds may drive it negative.
	Balance decimal.Decimal `json:"balance"`

	Friends map[string]struct{} `json:"-"`
	Ratings []int               `json:"-"`
}

// Name returns the display name of the user.
func (u *User) Name() string {
	return fmt.Sprintf("%s %s", u.FirstName, u.FamilyName)
}

// RatingMean returns the mean of all ratings received, 0 if unrated.
func (u *User) RatingMean() float64 {
	if len(u.Ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range u.Ratings {
		sum += r
	}
	return float64(sum) / float64(len(u.Ratings))
}

// Item represents the good sold in an auction. Items are immutable and
// owned exclusively by their auction.
type Item struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	MinValue    decimal.Decimal `json:"min_value"`
}

// Bid is a single bid event in an auction's ordered bid log
type Bid struct {
	BidID     string          `json:"bid_id"`
	AuctionID string          `json:"auction_id"`
	UserID    string          `json:"user_id"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}

// BidEntry is a bidder's latest amount, derived from the bid log.
type BidEntry struct {
	UserID string          `json:"user_id"`
	Amount decimal.Decimal `json:"amount"`
}
