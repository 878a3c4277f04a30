package groupindex

import (
	"errors"
	"fmt"
	"testing"

	"auction-marketplace/internal/auctionerrors"

	"github.com/stretchr/testify/require"
)

// checkInvariants verifies that every ancestor chain terminates at a
// root and that a root's weight equals the node count of its tree.
func checkInvariants(t *testing.T, x *Index) {
	t.Helper()

	x.mu.Lock()
	defer x.mu.Unlock()

	counts := make(map[string]int)
	for id := range x.nodes {
		cur := id
		for steps := 0; x.nodes[cur].parent != cur; steps++ {
			require.Less(t, steps, len(x.nodes), "ancestor chain of %q does not terminate", id)
			cur = x.nodes[cur].parent
		}
		counts[cur]++
	}

	for root, count := range counts {
		require.Equal(t, count, x.nodes[root].weight, "weight of root %q out of sync", root)
	}
}

func TestIndex_CreateGroups(t *testing.T) {
	x := New()
	require.NoError(t, x.CreateGroups(
		[]string{"u1", "u2", "u3"},
		[]string{"g1", "g1", "g2"},
	))
	checkInvariants(t, x)

	members, err := x.GroupMembers("u1")
	require.NoError(t, err)
	require.Equal(t, []string{"u1", "u2"}, members)

	members, err = x.GroupMembers("u3")
	require.NoError(t, err)
	require.Equal(t, []string{"u3"}, members)
}

func TestIndex_CreateGroups_LengthMismatch(t *testing.T) {
	x := New()
	err := x.CreateGroups([]string{"u1", "u2"}, []string{"g1"})
	require.Error(t, err)
	require.True(t, errors.Is(err, auctionerrors.ErrLengthMismatch))
}

func TestIndex_UnknownIDs(t *testing.T) {
	x := New()
	x.Add("u1")

	_, err := x.Find("ghost")
	require.True(t, errors.Is(err, auctionerrors.ErrUnknownID))

	err = x.Union("u1", "ghost")
	require.True(t, errors.Is(err, auctionerrors.ErrUnknownID))

	err = x.Union("ghost", "u1")
	require.True(t, errors.Is(err, auctionerrors.ErrUnknownID))

	_, err = x.GroupMembers("ghost")
	require.True(t, errors.Is(err, auctionerrors.ErrUnknownID))
}

func TestIndex_UnionByWeight(t *testing.T) {
	x := New()
	for _, id := range []string{"a", "b", "c", "d"} {
		x.Add(id)
	}

	// a-b forms a tree of weight 2; c joins the heavier tree under a.
	require.NoError(t, x.Union("a", "b"))
	require.NoError(t, x.Union("c", "a"))
	checkInvariants(t, x)

	root, err := x.Find("c")
	require.NoError(t, err)
	require.Equal(t, "a", root)

	w, err := x.Weight("b")
	require.NoError(t, err)
	require.Equal(t, 3, w)

	// equal weights: the first argument's root survives
	require.NoError(t, x.Union("d", "d"))
	x2 := New()
	x2.Add("p")
	x2.Add("q")
	require.NoError(t, x2.Union("p", "q"))
	root, err = x2.Find("q")
	require.NoError(t, err)
	require.Equal(t, "p", root)
}

func TestIndex_UnionSameSetIsNoop(t *testing.T) {
	x := New()
	x.Add("a")
	x.Add("b")
	require.NoError(t, x.Union("a", "b"))

	w1, err := x.Weight("a")
	require.NoError(t, err)
	require.NoError(t, x.Union("b", "a"))
	w2, err := x.Weight("a")
	require.NoError(t, err)
	require.Equal(t, w1, w2)
	checkInvariants(t, x)
}

func TestIndex_PathCompression(t *testing.T) {
	x := New()
	n := 64
	ids := make([]string, n)
	labels := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("u%d", i)
		labels[i] = "g"
	}
	require.NoError(t, x.CreateGroups(ids, labels))

	root, err := x.Find("u63")
	require.NoError(t, err)

	// after Find, the node points directly at the root
	x.mu.Lock()
	require.Equal(t, root, x.nodes["u63"].parent)
	x.mu.Unlock()

	checkInvariants(t, x)

	same, err := x.SameGroup("u0", "u63")
	require.NoError(t, err)
	require.True(t, same)
}
