package scheduler

import (
	"fmt"
	"math/rand"
	"sync"

	"auction-marketplace/internal/notify"
	"auction-marketplace/internal/registry"
	"auction-marketplace/utils"

	"github.com/shopspring/decimal"
)

var simulatedItems = []string{
	"Desk Lamp", "Record Player", "Mountain Bike", "Espresso Machine",
	"Bookshelf", "Film Camera", "Acoustic Guitar", "Typewriter",
}

// Simulator fakes other users buying and selling through the public
// registry operations. It has no privileged bypass of validation: a
// synthetic bid can be rejected like any other, and a tick that finds
// no usable user or auction simply does nothing.
type Simulator struct {
	mu            sync.Mutex
	reg           *registry.Registry
	rng           *rand.Rand
	sink          notify.Sink
	currentUserID string

	bidsPerTick int
}

// NewSimulator creates a Simulator excluding currentUserID from the
// synthetic actors so the foreground user only competes, never plays
// against themself.
func NewSimulator(reg *registry.Registry, rng *rand.Rand, sink notify.Sink, currentUserID string) *Simulator {
	return &Simulator{
		reg:           reg,
		rng:           rng,
		sink:          sink,
		currentUserID: currentUserID,
		bidsPerTick:   5,
	}
}

// Tick performs one round of synthetic bids, one listing and one rating.
func (s *Simulator) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.placeRandomBids(s.bidsPerTick)
	s.createRandomAuction()
	s.rateRandomSeller()
}

// PlaceRandomBids seeds initial market activity, usable outside ticks.
func (s *Simulator) PlaceRandomBids(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.placeRandomBids(n)
}

func (s *Simulator) placeRandomBids(n int) {
	users := s.actors()
	auctions := s.reg.ActiveAuctions()
	if len(users) == 0 || len(auctions) == 0 {
		return
	}

	for i := 0; i < n; i++ {
		userID := users[s.rng.Intn(len(users))]
		auctionID := auctions[s.rng.Intn(len(auctions))]

		info, err := s.reg.AuctionInfo(auctionID)
		if err != nil {
			continue
		}
		floor := info.Item.MinValue
		if info.HighestBid.GreaterThan(floor) {
			floor = info.HighestBid
		}
		amount := floor.Add(decimal.NewFromInt(int64(1 + s.rng.Intn(50))))

		if !s.reg.PlaceBid(auctionID, userID, amount) {
			continue
		}

		// tell the foreground user when the simulation outbids them
		if s.currentUserID != "" && info.HighestBidder == s.currentUserID {
			s.sink.Push(fmt.Sprintf(
				"You have been outbid on %s: %s now leads with %s.",
				info.Item.Name, userID, amount))
		}
	}
}

func (s *Simulator) createRandomAuction() {
	users := s.actors()
	if len(users) == 0 {
		return
	}
	sellerID := users[s.rng.Intn(len(users))]
	name := simulatedItems[s.rng.Intn(len(simulatedItems))]
	minValue := decimal.NewFromInt(int64(10 + s.rng.Intn(200)))

	if _, err := s.reg.ListItem(sellerID, name, "simulated listing", minValue); err != nil {
		utils.Warn("simulator: listing rejected", map[string]any{
			"seller_id": sellerID,
			"error":     err.Error(),
		})
	}
}

func (s *Simulator) rateRandomSeller() {
	users := s.actors()
	if len(users) == 0 {
		return
	}
	sellerID := users[s.rng.Intn(len(users))]
	stars := 1 + s.rng.Intn(5)

	if err := s.reg.RateSeller(sellerID, stars); err != nil {
		utils.Warn("simulator: rating rejected", map[string]any{
			"seller_id": sellerID,
			"error":     err.Error(),
		})
	}
}

// actors returns every user id except the foreground user.
func (s *Simulator) actors() []string {
	all := s.reg.Users().AllIDs()
	if s.currentUserID == "" {
		return all
	}
	actors := all[:0:0]
	for _, id := range all {
		if id != s.currentUserID {
			actors = append(actors, id)
		}
	}
	return actors
}
