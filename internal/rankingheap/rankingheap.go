package rankingheap

import (
	"fmt"
	"sync"

	"auction-marketplace/internal/auctionerrors"
)

type entry struct {
	score float64
	key   string
}

// Heap is an array-backed binary max-heap of (score, key) pairs with a
// key -> slot index so arbitrary keys can be updated or removed in
// O(log n). Scores are float64 because one instance ranks auctions by
// distinct bidder count and another ranks sellers by mean rating.
//
// Ties between equal scores are broken by key: the lexicographically
// smaller key ranks higher. The policy is arbitrary but must stay fixed,
// otherwise heap order is unspecified among equal scores.
type Heap struct {
	mu      sync.RWMutex
	entries []entry
	index   map[string]int
}

// New creates an empty Heap
func New() *Heap {
	return &Heap{
		index: make(map[string]int),
	}
}

// Insert adds a new key with the given score and restores the heap
// property. Inserting a key that is already present is an error.
func (h *Heap) Insert(key string, score float64) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.index[key]; ok {
		return fmt.Errorf("insert %q: %w", key, auctionerrors.ErrDuplicateKey)
	}

	h.entries = append(h.entries, entry{score: score, key: key})
	h.index[key] = len(h.entries) - 1
	h.siftUp(len(h.entries) - 1)
	return nil
}

// UpdateScore overwrites the score of an existing key in place and sifts
// it up or down depending on the direction of the change.
func (h *Heap) UpdateScore(key string, score float64) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	i, ok := h.index[key]
	if !ok {
		return fmt.Errorf("update %q: %w", key, auctionerrors.ErrUnknownKey)
	}

	old := h.entries[i].score
	h.entries[i].score = score
	switch {
	case score > old:
		h.siftUp(i)
	case score < old:
		h.siftDown(i)
	}
	return nil
}

// Remove deletes a key from the heap. The vacated slot is refilled with
// the last element, which is then sifted in both directions: the
// replacement's relative order to the removed element is unknown, so a
// sift-down alone would miss the case where it must move up.
func (h *Heap) Remove(key string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	i, ok := h.index[key]
	if !ok {
		return fmt.Errorf("remove %q: %w", key, auctionerrors.ErrUnknownKey)
	}

	last := len(h.entries) - 1
	if i != last {
		h.swap(i, last)
	}
	h.entries = h.entries[:last]
	delete(h.index, key)

	if i < last {
		h.siftUp(i)
		h.siftDown(i)
	}
	return nil
}

// PeekMax returns the highest-ranking (score, key) pair without mutating
// the heap. ok is false when the heap is empty.
func (h *Heap) PeekMax() (score float64, key string, ok bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.entries) == 0 {
		return 0, "", false
	}
	return h.entries[0].score, h.entries[0].key, true
}

// Score returns the current score of a key.
func (h *Heap) Score(key string) (float64, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	i, ok := h.index[key]
	if !ok {
		return 0, false
	}
	return h.entries[i].score, true
}

// Contains reports whether the key is present.
func (h *Heap) Contains(key string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	_, ok := h.index[key]
	return ok
}

// Len returns the number of entries in the heap.
func (h *Heap) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.entries)
}

// ranksAbove reports whether entry i outranks entry j.
func (h *Heap) ranksAbove(i, j int) bool {
	if h.entries[i].score != h.entries[j].score {
		return h.entries[i].score > h.entries[j].score
	}
	return h.entries[i].key < h.entries[j].key
}

func (h *Heap) swap(i, j int) {
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
	h.index[h.entries[i].key] = i
	h.index[h.entries[j].key] = j
}

func (h *Heap) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.ranksAbove(i, parent) {
			return
		}
		h.swap(i, parent)
		i = parent
	}
}

func (h *Heap) siftDown(i int) {
	n := len(h.entries)
	for {
		left := 2*i + 1
		right := 2*i + 2
		top := i
		if left < n && h.ranksAbove(left, top) {
			top = left
		}
		if right < n && h.ranksAbove(right, top) {
			top = right
		}
		if top == i {
			return
		}
		h.swap(i, top)
		i = top
	}
}
