// Package searchindex provides an ordered dictionary over lowercase
// item names for prefix search. It is a convenience index for browsing:
// deliberately not wired into settlement or ranking.
package searchindex

import (
	"strings"
	"sync"

	"github.com/google/btree"
)

// Entry maps a lowercase item name to the auction listing it.
type Entry struct {
	Name      string `json:"name"`
	AuctionID string `json:"auction_id"`
}

// Index is a concurrency-safe ordered dictionary keyed by lowercase
// item name.
type Index struct {
	mu   sync.RWMutex
	tree *btree.BTreeG[Entry]
}

// New creates an empty Index
func New() *Index {
	return &Index{
		tree: btree.NewG(2, func(a, b Entry) bool { return a.Name < b.Name }),
	}
}

// Put associates the item name (lowercased) with an auction id. A
// repeated name overwrites the earlier entry.
func (x *Index) Put(name, auctionID string) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.tree.ReplaceOrInsert(Entry{Name: strings.ToLower(name), AuctionID: auctionID})
}

// Get returns the auction id listed under the item name.
func (x *Index) Get(name string) (string, bool) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	entry, ok := x.tree.Get(Entry{Name: strings.ToLower(name)})
	if !ok {
		return "", false
	}
	return entry.AuctionID, true
}

// Delete removes the item name from the index.
func (x *Index) Delete(name string) bool {
	x.mu.Lock()
	defer x.mu.Unlock()

	_, ok := x.tree.Delete(Entry{Name: strings.ToLower(name)})
	return ok
}

// Prefix returns every entry whose name starts with the given prefix,
// in ascending name order. An empty prefix returns all entries.
func (x *Index) Prefix(prefix string) []Entry {
	p := strings.ToLower(prefix)

	x.mu.RLock()
	defer x.mu.RUnlock()

	var entries []Entry
	x.tree.AscendGreaterOrEqual(Entry{Name: p}, func(e Entry) bool {
		if !strings.HasPrefix(e.Name, p) {
			return false
		}
		entries = append(entries, e)
		return true
	})
	return entries
}

// Len returns the number of indexed names.
func (x *Index) Len() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.tree.Len()
}
