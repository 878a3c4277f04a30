// Package seed materializes the initial user set, friend graph and
// auction listing from CSV files at startup.
package seed

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"
	"sort"
	"strconv"
	"strings"
	"time"

	"auction-marketplace/internal/models"
	"auction-marketplace/internal/registry"
	"auction-marketplace/internal/userstore"

	"github.com/shopspring/decimal"
)

// readRecords reads all CSV rows after the header, tolerating a UTF-8
// BOM on the first cell.
func readRecords(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("seed: read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	if len(records[0]) > 0 {
		records[0][0] = strings.TrimPrefix(records[0][0], "\ufeff")
	}
	return records[1:], nil // header
}

// parseCoords parses "(lat, lon)" into Coordinates.
func parseCoords(s string) (models.Coordinates, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "(")
	s = strings.TrimSuffix(s, ")")

	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return models.Coordinates{}, fmt.Errorf("seed: malformed coordinates %q", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return models.Coordinates{}, fmt.Errorf("seed: latitude in %q: %w", s, err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return models.Coordinates{}, fmt.Errorf("seed: longitude in %q: %w", s, err)
	}
	return models.Coordinates{Lat: lat, Lon: lon}, nil
}

// LoadUsers populates the store from rows of
// (id, family name, first name, password, group label, coords, address)
// and builds the group partition from the labels in file order.
func LoadUsers(store *userstore.Store, r io.Reader) error {
	records, err := readRecords(r)
	if err != nil {
		return err
	}

	var ids, labels []string
	for _, row := range records {
		if len(row) != 7 {
			return fmt.Errorf("seed: user row has %d fields, want 7", len(row))
		}
		coords, err := parseCoords(row[5])
		if err != nil {
			return err
		}
		if err := store.Add(row[0], row[3], row[1], row[2], coords, row[6]); err != nil {
			return err
		}
		ids = append(ids, row[0])
		labels = append(labels, row[4])
	}
	return store.CreateGroups(ids, labels)
}

// LoadFriends reads rows of (id, "friend1, friend2, ...") and records
// each listed friendship. AddFriend is symmetric, so every listed
// friend also gets the source id in their own friend set.
func LoadFriends(store *userstore.Store, r io.Reader) error {
	records, err := readRecords(r)
	if err != nil {
		return err
	}

	for _, row := range records {
		if len(row) != 2 {
			return fmt.Errorf("seed: friends row has %d fields, want 2", len(row))
		}
		for _, friend := range strings.Split(row[1], ",") {
			friend = strings.TrimSpace(friend)
			if friend == "" {
				continue
			}
			if err := store.AddFriend(row[0], friend); err != nil {
				return err
			}
		}
	}
	return nil
}

// LoadAuctions converts rows of (item name, description, seller id,
// minimum value) into listings with randomized end times within spread
// of now, inserted in ascending end-time order.
func LoadAuctions(reg *registry.Registry, r io.Reader, now time.Time, spread time.Duration, rng *rand.Rand) error {
	records, err := readRecords(r)
	if err != nil {
		return err
	}

	type listing struct {
		name, description, sellerID string
		minValue                    decimal.Decimal
		endsAt                      time.Time
	}
	listings := make([]listing, 0, len(records))
	for _, row := range records {
		if len(row) != 4 {
			return fmt.Errorf("seed: auction row has %d fields, want 4", len(row))
		}
		minValue, err := decimal.NewFromString(strings.TrimSpace(row[3]))
		if err != nil {
			return fmt.Errorf("seed: minimum value for %q: %w", row[0], err)
		}
		listings = append(listings, listing{
			name:        row[0],
			description: row[1],
			sellerID:    row[2],
			minValue:    minValue,
			endsAt:      now.Add(time.Duration(1+rng.Int63n(int64(spread)))),
		})
	}

	sort.Slice(listings, func(i, j int) bool {
		return listings[i].endsAt.Before(listings[j].endsAt)
	})

	for _, l := range listings {
		if _, err := reg.ListItemEnding(l.sellerID, l.name, l.description, l.minValue, l.endsAt); err != nil {
			return fmt.Errorf("seed: list %q: %w", l.name, err)
		}
	}
	return nil
}
