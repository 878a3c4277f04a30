// Package distance is the driving-distance collaborator consumed by the
// friend recommendation features. It is deliberately opaque: a function
// from two coordinates to meters that reports internal failure through
// an infinite sentinel instead of an error.
package distance

import (
	"math"
	"sync"

	"auction-marketplace/internal/models"
)

// Infinite is returned when a distance cannot be computed.
var Infinite = math.Inf(1)

// Func computes the driving distance between two coordinates in meters.
type Func func(a, b models.Coordinates) float64

// metersPerDegree approximates one degree of latitude. Good enough for
// the coarse proximity thresholds the recommendations use.
const metersPerDegree = 111320.0

// Manhattan is the fallback implementation used when no road-network
// service is wired in: the component-wise degree distance scaled to
// meters.
func Manhattan(a, b models.Coordinates) float64 {
	return (math.Abs(a.Lat-b.Lat) + math.Abs(a.Lon-b.Lon)) * metersPerDegree
}

// Cached wraps fn with a memoizing layer keyed by the coordinate pair.
// Failed lookups (Infinite) are not cached so a transient failure can
// recover on the next call.
func Cached(fn Func) Func {
	var mu sync.Mutex
	cache := make(map[[4]float64]float64)

	return func(a, b models.Coordinates) float64 {
		key := [4]float64{a.Lat, a.Lon, b.Lat, b.Lon}

		mu.Lock()
		if d, ok := cache[key]; ok {
			mu.Unlock()
			return d
		}
		mu.Unlock()

		d := fn(a, b)

		if !math.IsInf(d, 1) {
			mu.Lock()
			cache[key] = d
			mu.Unlock()
		}
		return d
	}
}
