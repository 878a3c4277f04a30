package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"auction-marketplace/internal/distance"
	"auction-marketplace/internal/notify"
	"auction-marketplace/internal/registry"
	"auction-marketplace/internal/scheduler"
	"auction-marketplace/internal/searchindex"
	"auction-marketplace/internal/seed"
	"auction-marketplace/internal/server"
	"auction-marketplace/internal/userstore"
	"auction-marketplace/utils"
)

func main() {
	store := userstore.New(distance.Cached(distance.Manhattan))
	reg := registry.New(store, auctionDuration())

	seedData(store, reg)

	search := searchindex.New()
	for _, id := range reg.ActiveAuctions() {
		if item, err := reg.Item(id); err == nil {
			search.Put(item.Name, id)
		}
	}

	sched := scheduler.New()
	tick := tickPeriod()
	sched.Add(scheduler.ExpirationTask(reg, tick))
	sched.Add(scheduler.NotificationTask(reg, notify.LogSink{}, 10*tick))
	if simulationEnabled() {
		sim := scheduler.NewSimulator(reg, rand.New(rand.NewSource(time.Now().UnixNano())), notify.LogSink{}, "")
		sched.Add(scheduler.SimulationTask(sim, tick))
	}
	sched.Start()
	defer sched.Stop()

	router := server.SetupRouter(reg, search)

	port := getPort()
	fmt.Printf("Starting auction server on %s...\n", port)
	if err := router.Run(port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// seedData loads users, friendships and auctions from the CSV files
// named by USERS_CSV, FRIENDS_CSV and AUCTIONS_CSV, falling back to a
// small built-in sample when a variable is unset.
func seedData(store *userstore.Store, reg *registry.Registry) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now()

	if err := seed.LoadUsers(store, seedReader("USERS_CSV", sampleUsers)); err != nil {
		utils.Fatal("failed to seed users", map[string]any{"error": err.Error()})
	}
	if err := seed.LoadFriends(store, seedReader("FRIENDS_CSV", sampleFriends)); err != nil {
		utils.Fatal("failed to seed friendships", map[string]any{"error": err.Error()})
	}
	if err := seed.LoadAuctions(reg, seedReader("AUCTIONS_CSV", sampleAuctions), now, auctionDuration(), rng); err != nil {
		utils.Fatal("failed to seed auctions", map[string]any{"error": err.Error()})
	}

	utils.Info("seed data loaded", map[string]any{
		"users":    store.NumUsers(),
		"auctions": reg.Len(),
	})
}

func seedReader(envVar, fallback string) *strings.Reader {
	if path := os.Getenv(envVar); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			utils.Fatal("failed to read seed file", map[string]any{"path": path, "error": err.Error()})
		}
		return strings.NewReader(string(raw))
	}
	return strings.NewReader(fallback)
}

// getPort returns the server port from env or defaults to ":8080"
func getPort() string {
	if p := os.Getenv("PORT"); p != "" {
		return fmt.Sprintf(":%s", p)
	}
	return ":8080"
}

// auctionDuration returns how long new listings stay open, from
// AUCTION_MINUTES or a 60 minute default.
func auctionDuration() time.Duration {
	if v := os.Getenv("AUCTION_MINUTES"); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil && minutes > 0 {
			return time.Duration(minutes) * time.Minute
		}
	}
	return 60 * time.Minute
}

// tickPeriod returns the scheduler tick from TICK_SECONDS or a 30
// second default.
func tickPeriod() time.Duration {
	if v := os.Getenv("TICK_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return 30 * time.Second
}

func simulationEnabled() bool {
	switch strings.ToLower(os.Getenv("SIMULATION")) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

const sampleUsers = `user_id,family_name,first_name,password,group,coordinates,address
u1,Hughes,Mara,hunter2,blue,"(52.5200, 13.4050)",Alexanderplatz 1
u2,Okafor,Dele,swordfish,blue,"(52.5163, 13.3777)",Unter den Linden 77
u3,Lindqvist,Sven,letmein,red,"(52.5096, 13.3762)",Potsdamer Platz 9
u4,Moreau,Celine,tr0ub4dor,red,"(52.5040, 13.4394)",Skalitzer Str 133
`

const sampleFriends = `user_id,friends
u1,"u2, u3"
u2,"u4"
`

const sampleAuctions = `item_name,description,seller_id,min_value
Desk Lamp,brass Bauhaus desk lamp,u1,25
Typewriter,1958 Olympia portable,u2,80
Bookshelf,walnut five shelf unit,u3,40
`
