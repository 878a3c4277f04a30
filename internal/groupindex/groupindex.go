package groupindex

import (
	"fmt"
	"sort"
	"sync"

	"auction-marketplace/internal/auctionerrors"
)

type node struct {
	parent string
	weight int
}

// Index partitions a universe of ids into disjoint sets using a weighted
// union-find with path compression. Bulk grouping happens once at
// startup; afterwards the structure mostly answers "same group" queries,
// so tree depth stays near-logarithmic without rank bookkeeping and the
// root weight doubles as the group size.
type Index struct {
	mu    sync.Mutex
	nodes map[string]*node
}

// New creates an empty Index
func New() *Index {
	return &Index{
		nodes: make(map[string]*node),
	}
}

// Add creates a singleton set for id. Adding a known id is a no-op.
func (x *Index) Add(id string) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.add(id)
}

func (x *Index) add(id string) {
	if _, ok := x.nodes[id]; ok {
		return
	}
	x.nodes[id] = &node{parent: id, weight: 1}
}

// Contains reports whether the id is known to the index.
func (x *Index) Contains(id string) bool {
	x.mu.Lock()
	defer x.mu.Unlock()

	_, ok := x.nodes[id]
	return ok
}

// Find returns the root id of the set containing id, compressing the
// path so every visited node points directly at the root.
func (x *Index) Find(id string) (string, error) {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.find(id)
}

func (x *Index) find(id string) (string, error) {
	if _, ok := x.nodes[id]; !ok {
		return "", fmt.Errorf("find %q: %w", id, auctionerrors.ErrUnknownID)
	}

	root := id
	for x.nodes[root].parent != root {
		root = x.nodes[root].parent
	}

	// second pass: point every node on the walked path at the root
	for cur := id; cur != root; {
		next := x.nodes[cur].parent
		x.nodes[cur].parent = root
		cur = next
	}
	return root, nil
}

// Union merges the sets containing id1 and id2. The lighter tree's root
// is attached under the heavier tree's root; on equal weights the first
// argument's root survives. Merging an already-joined pair is a no-op.
func (x *Index) Union(id1, id2 string) error {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.union(id1, id2)
}

func (x *Index) union(id1, id2 string) error {
	root1, err := x.find(id1)
	if err != nil {
		return err
	}
	root2, err := x.find(id2)
	if err != nil {
		return err
	}
	if root1 == root2 {
		return nil
	}

	if x.nodes[root1].weight < x.nodes[root2].weight {
		root1, root2 = root2, root1
	}
	x.nodes[root2].parent = root1
	x.nodes[root1].weight += x.nodes[root2].weight
	return nil
}

// CreateGroups builds the initial partition from parallel sequences of
// ids and group labels. Unseen ids are created lazily; each id is
// unioned with the first id carrying the same label.
func (x *Index) CreateGroups(ids, labels []string) error {
	if len(ids) != len(labels) {
		return fmt.Errorf("create groups: %d ids vs %d labels: %w",
			len(ids), len(labels), auctionerrors.ErrLengthMismatch)
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	first := make(map[string]string, len(labels))
	for i, id := range ids {
		x.add(id)
		label := labels[i]
		rep, ok := first[label]
		if !ok {
			first[label] = id
			continue
		}
		if err := x.union(rep, id); err != nil {
			return err
		}
	}
	return nil
}

// GroupMembers returns every id sharing a set with id, sorted. The scan
// is O(n), acceptable since membership queries are rare next to auction
// operations.
func (x *Index) GroupMembers(id string) ([]string, error) {
	x.mu.Lock()
	defer x.mu.Unlock()

	root, err := x.find(id)
	if err != nil {
		return nil, err
	}

	var members []string
	for other := range x.nodes {
		otherRoot, err := x.find(other)
		if err != nil {
			return nil, err
		}
		if otherRoot == root {
			members = append(members, other)
		}
	}
	sort.Strings(members)
	return members, nil
}

// SameGroup reports whether both ids belong to the same set.
func (x *Index) SameGroup(id1, id2 string) (bool, error) {
	x.mu.Lock()
	defer x.mu.Unlock()

	root1, err := x.find(id1)
	if err != nil {
		return false, err
	}
	root2, err := x.find(id2)
	if err != nil {
		return false, err
	}
	return root1 == root2, nil
}

// Weight returns the size of the set containing id.
func (x *Index) Weight(id string) (int, error) {
	x.mu.Lock()
	defer x.mu.Unlock()

	root, err := x.find(id)
	if err != nil {
		return 0, err
	}
	return x.nodes[root].weight, nil
}

// Len returns the number of ids in the index.
func (x *Index) Len() int {
	x.mu.Lock()
	defer x.mu.Unlock()

	return len(x.nodes)
}
