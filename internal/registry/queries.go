package registry

import (
	"fmt"
	"sort"
	"time"

	"auction-marketplace/internal/auctionerrors"
	"auction-marketplace/internal/models"

	"github.com/shopspring/decimal"
)

// AuctionInfo is a consistent read-only snapshot of one auction.
type AuctionInfo struct {
	ID            string          `json:"auction_id"`
	SellerID      string          `json:"seller_id"`
	Item          models.Item     `json:"item"`
	EndsAt        time.Time       `json:"ends_at"`
	TimeLeft      time.Duration   `json:"time_left"`
	BidderCount   int             `json:"bidder_count"`
	HighestBid    decimal.Decimal `json:"highest_bid"`
	HighestBidder string          `json:"highest_bidder"`
	PurchaserID   string          `json:"purchaser_id"`
	Sold          bool            `json:"sold"`
	SoldSuccess   bool            `json:"sold_success"`
}

func (r *Registry) auction(auctionID string) (*models.Auction, error) {
	a, ok := r.auctions[auctionID]
	if !ok {
		return nil, fmt.Errorf("auction %q: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return a, nil
}

// AuctionInfo returns a snapshot of the auction taken under one lock
// acquisition.
func (r *Registry) AuctionInfo(auctionID string) (AuctionInfo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, err := r.auction(auctionID)
	if err != nil {
		return AuctionInfo{}, err
	}

	info := AuctionInfo{
		ID:          a.ID,
		SellerID:    a.SellerID,
		Item:        a.Item,
		EndsAt:      a.EndsAt,
		BidderCount: a.BidCount(),
		PurchaserID: a.PurchaserID,
		Sold:        a.Sold,
		SoldSuccess: a.SoldSuccess,
	}
	if left := a.EndsAt.Sub(r.now()); left > 0 {
		info.TimeLeft = left
	}
	if highest, ok := a.HighestBid(); ok {
		info.HighestBid = highest.Amount
		info.HighestBidder = highest.UserID
	}
	return info, nil
}

// TimeLeft returns the remaining auction time, 0 once expired.
func (r *Registry) TimeLeft(auctionID string) (time.Duration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, err := r.auction(auctionID)
	if err != nil {
		return 0, err
	}
	if left := a.EndsAt.Sub(r.now()); left > 0 {
		return left, nil
	}
	return 0, nil
}

// EndsAt returns the fixed end time of the auction.
func (r *Registry) EndsAt(auctionID string) (time.Time, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, err := r.auction(auctionID)
	if err != nil {
		return time.Time{}, err
	}
	return a.EndsAt, nil
}

// SellerID returns the seller of the auction.
func (r *Registry) SellerID(auctionID string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, err := r.auction(auctionID)
	if err != nil {
		return "", err
	}
	return a.SellerID, nil
}

// PurchaserID returns the purchaser, ErrNoPurchaser until settlement
// has resolved one.
func (r *Registry) PurchaserID(auctionID string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, err := r.auction(auctionID)
	if err != nil {
		return "", err
	}
	if a.PurchaserID == "" {
		return "", fmt.Errorf("auction %q: %w", auctionID, auctionerrors.ErrNoPurchaser)
	}
	return a.PurchaserID, nil
}

// Item returns the item under auction.
func (r *Registry) Item(auctionID string) (models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, err := r.auction(auctionID)
	if err != nil {
		return models.Item{}, err
	}
	return a.Item, nil
}

// AllItemNames returns the item names of every auction, sorted.
func (r *Registry) AllItemNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.auctions))
	for _, a := range r.auctions {
		names = append(names, a.Item.Name)
	}
	sort.Strings(names)
	return names
}

// UsersBidding returns each distinct bidder with their latest amount.
func (r *Registry) UsersBidding(auctionID string) ([]models.BidEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, err := r.auction(auctionID)
	if err != nil {
		return nil, err
	}
	return a.UsersBidding(), nil
}

// HighestBid returns the current highest bid event.
func (r *Registry) HighestBid(auctionID string) (models.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, err := r.auction(auctionID)
	if err != nil {
		return models.Bid{}, err
	}
	highest, ok := a.HighestBid()
	if !ok {
		return models.Bid{}, fmt.Errorf("auction %q: %w", auctionID, auctionerrors.ErrNoBids)
	}
	return highest, nil
}

// HighestBidder returns the user currently holding the highest bid.
func (r *Registry) HighestBidder(auctionID string) (string, error) {
	highest, err := r.HighestBid(auctionID)
	if err != nil {
		return "", err
	}
	return highest.UserID, nil
}

// LastBid returns the most recent bid event.
func (r *Registry) LastBid(auctionID string) (models.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, err := r.auction(auctionID)
	if err != nil {
		return models.Bid{}, err
	}
	last, ok := a.LastBid()
	if !ok {
		return models.Bid{}, fmt.Errorf("auction %q: %w", auctionID, auctionerrors.ErrNoBids)
	}
	return last, nil
}

// IsUserBidding reports whether the user has bid in the auction.
func (r *Registry) IsUserBidding(auctionID, userID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, err := r.auction(auctionID)
	if err != nil {
		return false, err
	}
	return a.IsUserBidding(userID), nil
}

// BidOfUser returns the user's latest bid amount in the auction.
func (r *Registry) BidOfUser(auctionID, userID string) (decimal.Decimal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, err := r.auction(auctionID)
	if err != nil {
		return decimal.Zero, err
	}
	amount, ok := a.BidOf(userID)
	if !ok {
		return decimal.Zero, fmt.Errorf("auction %q, user %q: %w", auctionID, userID, auctionerrors.ErrNoBids)
	}
	return amount, nil
}

// AuctionsOffered returns the user's not-yet-sold listings.
func (r *Registry) AuctionsOffered(userID string) []string {
	return r.filter(func(a *models.Auction) bool {
		return a.SellerID == userID && !a.Sold
	})
}

// AuctionsBidIn returns the not-yet-sold auctions the user is bidding in.
func (r *Registry) AuctionsBidIn(userID string) []string {
	return r.filter(func(a *models.Auction) bool {
		return !a.Sold && a.IsUserBidding(userID)
	})
}

// AuctionsSold returns the user's successfully settled listings.
func (r *Registry) AuctionsSold(userID string) []string {
	return r.filter(func(a *models.Auction) bool {
		return a.SellerID == userID && a.SoldSuccess
	})
}

// AuctionsWon returns the auctions the user purchased.
func (r *Registry) AuctionsWon(userID string) []string {
	return r.filter(func(a *models.Auction) bool {
		return a.PurchaserID == userID
	})
}

// ActiveAuctions returns every not-yet-sold auction id ordered by
// ascending end time.
func (r *Registry) ActiveAuctions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	type ending struct {
		id     string
		endsAt time.Time
	}
	var active []ending
	for id, a := range r.auctions {
		if !a.Sold {
			active = append(active, ending{id: id, endsAt: a.EndsAt})
		}
	}
	sort.Slice(active, func(i, j int) bool {
		if !active[i].endsAt.Equal(active[j].endsAt) {
			return active[i].endsAt.Before(active[j].endsAt)
		}
		return active[i].id < active[j].id
	})

	ids := make([]string, 0, len(active))
	for _, e := range active {
		ids = append(ids, e.id)
	}
	return ids
}

// filter returns the sorted ids of auctions matching the predicate.
func (r *Registry) filter(keep func(*models.Auction) bool) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var ids []string
	for id, a := range r.auctions {
		if keep(a) {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// TopAuction returns the auction currently drawing the most distinct
// bidders. ok is false when no active auction exists.
func (r *Registry) TopAuction() (auctionID string, bidders float64, ok bool) {
	bidders, auctionID, ok = r.bidHeap.PeekMax()
	return auctionID, bidders, ok
}

// TopRatedSeller returns the seller with the best mean rating. ok is
// false while no seller has been rated.
func (r *Registry) TopRatedSeller() (sellerID string, meanStars float64, ok bool) {
	meanStars, sellerID, ok = r.sellerHeap.PeekMax()
	return sellerID, meanStars, ok
}

// RecommendAuction scores every not-yet-sold auction listed by one of
// the user's friends by how many friends are listing or bidding in it
// and returns the single highest-scored id. Ties go to the first
// auction found in (sorted) iteration order.
func (r *Registry) RecommendAuction(userID string) (string, error) {
	friends, err := r.users.Friends(userID)
	if err != nil {
		return "", fmt.Errorf("recommend: %w", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	scores := make(map[string]int)
	friendSet := make(map[string]struct{}, len(friends))
	for _, f := range friends {
		friendSet[f] = struct{}{}
	}
	for id, a := range r.auctions {
		if a.Sold {
			continue
		}
		if _, listed := friendSet[a.SellerID]; !listed {
			continue
		}
		scores[id]++
		for _, f := range friends {
			if f != a.SellerID && a.IsUserBidding(f) {
				scores[id]++
			}
		}
	}
	if len(scores) == 0 {
		return "", fmt.Errorf("recommend for %q: %w", userID, auctionerrors.ErrNoRecommendation)
	}

	ids := make([]string, 0, len(scores))
	for id := range scores {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	best := ids[0]
	for _, id := range ids[1:] {
		if scores[id] > scores[best] {
			best = id
		}
	}
	return best, nil
}

// Len returns the number of auctions in the registry.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.auctions)
}

// NextAuctionID returns the numeric id the next listing will take.
func (r *Registry) NextAuctionID() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.nextID
}
