package registry

import (
	"fmt"
	"sync"
	"time"

	"auction-marketplace/internal/auctionerrors"
	"auction-marketplace/internal/models"
	"auction-marketplace/internal/rankingheap"
	"auction-marketplace/internal/userstore"
	"auction-marketplace/utils"

	"github.com/shopspring/decimal"
)

// Registry owns the auction map and the two ranking heaps derived from
// it: auctions by distinct bidder count and sellers by mean rating. The
// heaps store ids plus scores only, never a second copy of the auction.
//
// The registry mutex spans every read-modify-write of an auction's bid
// log together with its heap entry, so bids, deletion and settlement on
// the same auction are linearizable: settlement never observes a
// half-applied bid, and two racing bids cannot both validate against
// the same pre-bid highest amount.
type Registry struct {
	mu       sync.RWMutex
	auctions map[string]*models.Auction
	nextID   int

	bidHeap    *rankingheap.Heap // auction id -> distinct bidder count
	sellerHeap *rankingheap.Heap // seller id -> mean rating

	users    *userstore.Store
	duration time.Duration
	now      func() time.Time
}

// New creates a Registry whose listings run for the given duration.
func New(users *userstore.Store, auctionDuration time.Duration) *Registry {
	return NewWithClock(users, auctionDuration, time.Now)
}

// NewWithClock creates a Registry with an injectable clock.
func NewWithClock(users *userstore.Store, auctionDuration time.Duration, clock func() time.Time) *Registry {
	return &Registry{
		auctions:   make(map[string]*models.Auction),
		bidHeap:    rankingheap.New(),
		sellerHeap: rankingheap.New(),
		users:      users,
		duration:   auctionDuration,
		now:        clock,
	}
}

// Users returns the user store backing the registry.
func (r *Registry) Users() *userstore.Store {
	return r.users
}

// ListItem creates an auction for a new item ending after the default
// duration and returns the fresh auction id.
func (r *Registry) ListItem(sellerID, name, description string, minValue decimal.Decimal) (string, error) {
	return r.ListItemEnding(sellerID, name, description, minValue, r.now().Add(r.duration))
}

// ListItemEnding creates an auction with an explicit end time. The end
// time is fixed here and never extended afterwards.
func (r *Registry) ListItemEnding(sellerID, name, description string, minValue decimal.Decimal, endsAt time.Time) (string, error) {
	if !minValue.IsPositive() {
		return "", fmt.Errorf("list %q: minimum value %s not positive: %w",
			name, minValue, auctionerrors.ErrInvalidItem)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := fmt.Sprintf("a%d", r.nextID)
	r.nextID++

	r.auctions[id] = &models.Auction{
		ID:       id,
		SellerID: sellerID,
		Item: models.Item{
			Name:        name,
			Description: description,
			MinValue:    minValue,
		},
		EndsAt: endsAt,
	}

	if err := r.bidHeap.Insert(id, 0); err != nil {
		// ids are fresh by construction, a collision is a programming bug
		return "", fmt.Errorf("list %q: %w", name, err)
	}
	return id, nil
}

// PlaceBid records a bid. It returns false, not an error, when the
// auction is unknown or sold or the amount does not strictly exceed
// both the current highest bid and the item's minimum value: rejected
// bids are an expected, frequent outcome of normal use.
//
// User existence is deliberately not checked here. An unknown bidder
// surfaces later as the degraded settlement path.
func (r *Registry) PlaceBid(auctionID, userID string, amount decimal.Decimal) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.auctions[auctionID]
	if !ok || a.Sold {
		return false
	}
	if !amount.GreaterThan(a.Item.MinValue) {
		return false
	}
	if highest, has := a.HighestBid(); has && !amount.GreaterThan(highest.Amount) {
		return false
	}

	a.Bids = append(a.Bids, models.Bid{
		BidID:     utils.GenerateID(),
		AuctionID: auctionID,
		UserID:    userID,
		Amount:    amount,
		CreatedAt: r.now().UTC(),
	})

	if err := r.bidHeap.UpdateScore(auctionID, float64(a.BidCount())); err != nil {
		utils.Error("registry: bid heap out of sync", map[string]any{
			"auction_id": auctionID,
			"error":      err.Error(),
		})
	}
	return true
}

// DeleteAuction removes an auction. Deletion is permitted exactly when
// the bid set is empty.
func (r *Registry) DeleteAuction(auctionID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.auctions[auctionID]
	if !ok || len(a.Bids) > 0 {
		return false
	}

	delete(r.auctions, auctionID)
	if err := r.bidHeap.Remove(auctionID); err != nil {
		utils.Error("registry: bid heap out of sync", map[string]any{
			"auction_id": auctionID,
			"error":      err.Error(),
		})
	}
	return true
}

// Settle transitions an auction to its terminal state exactly once and
// reports whether the settlement succeeded. Already-sold and unknown
// auctions are a no-op.
//
// On success the seller is credited by the winning amount and every
// other distinct bidder is debited by their latest bid amount: every
// bid is treated as fully reserved funds, released back out when the
// bidder loses. If the resolved purchaser is missing from the user
// store the auction still terminates, as Sold(failed), with no balance
// movement at all.
func (r *Registry) Settle(auctionID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.auctions[auctionID]
	if !ok || a.Sold {
		return false
	}

	if r.bidHeap.Contains(auctionID) {
		if err := r.bidHeap.Remove(auctionID); err != nil {
			utils.Error("registry: bid heap out of sync", map[string]any{
				"auction_id": auctionID,
				"error":      err.Error(),
			})
		}
	}

	highest, has := a.HighestBid()
	if !has {
		a.Sold = true
		a.SoldSuccess = false
		utils.Warn("registry: auction expired without bids", map[string]any{
			"auction_id": auctionID,
			"item":       a.Item.Name,
		})
		return false
	}

	a.PurchaserID = highest.UserID
	a.Sold = true

	if !r.users.Exists(highest.UserID) {
		a.SoldSuccess = false
		utils.Warn("registry: purchaser unknown, settled without transfers", map[string]any{
			"auction_id":   auctionID,
			"purchaser_id": highest.UserID,
		})
		return false
	}

	if err := r.users.CreditBalance(a.SellerID, highest.Amount); err != nil {
		utils.Warn("registry: seller missing, winning amount not credited", map[string]any{
			"auction_id": auctionID,
			"seller_id":  a.SellerID,
		})
	}
	for _, entry := range a.UsersBidding() {
		if entry.UserID == highest.UserID {
			continue
		}
		if err := r.users.CreditBalance(entry.UserID, entry.Amount.Neg()); err != nil {
			utils.Warn("registry: losing bidder missing, reserve not released", map[string]any{
				"auction_id": auctionID,
				"user_id":    entry.UserID,
			})
		}
	}

	a.SoldSuccess = true
	utils.Info("registry: auction settled", map[string]any{
		"auction_id":   auctionID,
		"purchaser_id": a.PurchaserID,
		"amount":       highest.Amount.String(),
	})
	return true
}

// RateSeller appends a star rating for the seller and refreshes the
// top-rated heap. Star range validation is the caller's responsibility.
func (r *Registry) RateSeller(sellerID string, stars int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	mean, err := r.users.AddRating(sellerID, stars)
	if err != nil {
		return fmt.Errorf("rate seller: %w", err)
	}

	if err := r.sellerHeap.UpdateScore(sellerID, mean); err != nil {
		if insErr := r.sellerHeap.Insert(sellerID, mean); insErr != nil {
			return fmt.Errorf("rate seller %s: %w", sellerID, insErr)
		}
	}
	return nil
}

// SweepExpired settles every active auction whose end time has passed
// and returns how many were settled. Already-sold auctions are skipped,
// so the sweep is idempotent.
func (r *Registry) SweepExpired(now time.Time) int {
	r.mu.RLock()
	var expired []string
	for id, a := range r.auctions {
		if !a.Sold && a.Expired(now) {
			expired = append(expired, id)
		}
	}
	r.mu.RUnlock()

	settled := 0
	for _, id := range expired {
		r.Settle(id)
		settled++
	}
	return settled
}
