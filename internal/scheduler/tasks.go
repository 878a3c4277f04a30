package scheduler

import (
	"fmt"
	"time"

	"auction-marketplace/internal/notify"
	"auction-marketplace/internal/registry"
	"auction-marketplace/utils"
)

// ExpirationTask sweeps auctions past their end time and settles them.
func ExpirationTask(reg *registry.Registry, period time.Duration) Task {
	return Task{
		Name:   "expiration-sweep",
		Period: period,
		Fn: func() {
			if settled := reg.SweepExpired(time.Now()); settled > 0 {
				utils.Info("expiration sweep settled auctions", map[string]any{
					"settled": settled,
				})
			}
		},
	}
}

// NotificationTask emits the current top-rated seller each period. An
// empty rating heap makes the tick a no-op.
func NotificationTask(reg *registry.Registry, sink notify.Sink, period time.Duration) Task {
	return Task{
		Name:   "top-seller-notification",
		Period: period,
		Fn: func() {
			sellerID, meanStars, ok := reg.TopRatedSeller()
			if !ok {
				return
			}
			sink.Push(fmt.Sprintf(
				"Top-rated seller is %s with an average rating of %.2f stars.",
				sellerID, meanStars))
		},
	}
}

// SimulationTask injects synthetic market activity through the same
// public registry operations real clients use.
func SimulationTask(sim *Simulator, period time.Duration) Task {
	return Task{
		Name:   "market-simulation",
		Period: period,
		Fn:     sim.Tick,
	}
}
