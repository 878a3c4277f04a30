package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Auction is the mutable aggregate for one listed item. The bid log is a
// single ordered sequence of events; highest bid, latest amount per user
// and distinct bidder count are all derived from it. Auctions are owned by
// the registry and must only be mutated while holding the registry lock.
type Auction struct {
	ID       string    `json:"auction_id"`
	SellerID string    `json:"seller_id"`
	Item     Item      `json:"item"`
	EndsAt   time.Time `json:"ends_at"` // fixed at creation, never extended

	Bids []Bid `json:"bids"`

	PurchaserID string `json:"purchaser_id"`
	Sold        bool   `json:"sold"`
	SoldSuccess bool   `json:"sold_success"`
}

// BidCount returns the number of distinct bidders.
func (a *Auction) BidCount() int {
	seen := make(map[string]struct{}, len(a.Bids))
	for _, b := range a.Bids {
		seen[b.UserID] = struct{}{}
	}
	return len(seen)
}

// HighestBid returns the bid event with the highest amount. The first
// event reaching the maximum wins, so re-derivation is deterministic.
func (a *Auction) HighestBid() (Bid, bool) {
	if len(a.Bids) == 0 {
		return Bid{}, false
	}
	best := a.Bids[0]
	for _, b := range a.Bids[1:] {
		if b.Amount.GreaterThan(best.Amount) {
			best = b
		}
	}
	return best, true
}

// LastBid returns the most recent bid event.
func (a *Auction) LastBid() (Bid, bool) {
	if len(a.Bids) == 0 {
		return Bid{}, false
	}
	return a.Bids[len(a.Bids)-1], true
}

// UsersBidding returns each distinct bidder with their latest amount,
// ordered by first appearance in the bid log.
func (a *Auction) UsersBidding() []BidEntry {
	latest := make(map[string]int, len(a.Bids))
	order := make([]string, 0, len(a.Bids))
	for i, b := range a.Bids {
		if _, ok := latest[b.UserID]; !ok {
			order = append(order, b.UserID)
		}
		latest[b.UserID] = i
	}
	entries := make([]BidEntry, 0, len(order))
	for _, uid := range order {
		entries = append(entries, BidEntry{UserID: uid, Amount: a.Bids[latest[uid]].Amount})
	}
	return entries
}

// BidOf returns the latest amount the given user has bid.
func (a *Auction) BidOf(userID string) (decimal.Decimal, bool) {
	var amount decimal.Decimal
	found := false
	for _, b := range a.Bids {
		if b.UserID == userID {
			amount = b.Amount
			found = true
		}
	}
	return amount, found
}

// IsUserBidding reports whether the user appears in the bid log.
func (a *Auction) IsUserBidding(userID string) bool {
	for _, b := range a.Bids {
		if b.UserID == userID {
			return true
		}
	}
	return false
}

// Expired reports whether the auction's end time has passed.
func (a *Auction) Expired(now time.Time) bool {
	return !now.Before(a.EndsAt)
}
