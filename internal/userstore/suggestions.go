package userstore

import (
	"math"
	"sort"
)

// MutualFriends returns, for each friend-of-a-friend who is neither the
// user nor already a direct friend, the count of shared friends.
func (s *Store) MutualFriends(userID string) (map[string]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, err := s.get(userID)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for friendID := range u.Friends {
		friend, ok := s.users[friendID]
		if !ok {
			continue
		}
		for candidate := range friend.Friends {
			if candidate == userID {
				continue
			}
			if _, direct := u.Friends[candidate]; direct {
				continue
			}
			counts[candidate]++
		}
	}
	return counts, nil
}

// SuggestFriends recommends users who share at least minCommon mutual
// friends, followed by non-friends within maxMeters, deduplicated.
// Mutual-friend suggestions come first, most shared friends first.
func (s *Store) SuggestFriends(userID string, minCommon int, maxMeters float64) ([]string, error) {
	counts, err := s.MutualFriends(userID)
	if err != nil {
		return nil, err
	}

	type scored struct {
		id    string
		count int
	}
	byFriends := make([]scored, 0, len(counts))
	for id, count := range counts {
		if count >= minCommon {
			byFriends = append(byFriends, scored{id: id, count: count})
		}
	}
	sort.Slice(byFriends, func(i, j int) bool {
		if byFriends[i].count != byFriends[j].count {
			return byFriends[i].count > byFriends[j].count
		}
		return byFriends[i].id < byFriends[j].id
	})

	s.mu.RLock()
	defer s.mu.RUnlock()

	u, err := s.get(userID)
	if err != nil {
		return nil, err
	}

	type near struct {
		id     string
		meters float64
	}
	var byDistance []near
	for otherID, other := range s.users {
		if otherID == userID {
			continue
		}
		if _, direct := u.Friends[otherID]; direct {
			continue
		}
		d := s.dist(u.Coords, other.Coords)
		if d <= maxMeters {
			byDistance = append(byDistance, near{id: otherID, meters: d})
		}
	}
	sort.Slice(byDistance, func(i, j int) bool {
		if byDistance[i].meters != byDistance[j].meters {
			return byDistance[i].meters < byDistance[j].meters
		}
		return byDistance[i].id < byDistance[j].id
	})

	suggested := make([]string, 0, len(byFriends)+len(byDistance))
	seen := make(map[string]struct{})
	for _, sc := range byFriends {
		suggested = append(suggested, sc.id)
		seen[sc.id] = struct{}{}
	}
	for _, n := range byDistance {
		if _, dup := seen[n.id]; !dup {
			suggested = append(suggested, n.id)
		}
	}
	return suggested, nil
}

// NearbyFriendsOfFriends walks the friend graph two levels deep and
// returns non-friends within maxMeters, nearest first. Unreachable
// distances (the Infinite sentinel) are filtered out.
func (s *Store) NearbyFriendsOfFriends(userID string, maxMeters float64) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, err := s.get(userID)
	if err != nil {
		return nil, err
	}

	type queued struct {
		id    string
		depth int
	}
	visited := map[string]struct{}{userID: {}}
	var queue []queued
	for friendID := range u.Friends {
		queue = append(queue, queued{id: friendID, depth: 1})
	}
	sort.Slice(queue, func(i, j int) bool { return queue[i].id < queue[j].id })

	type near struct {
		id     string
		meters float64
	}
	var found []near
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if _, done := visited[cur.id]; done {
			continue
		}
		visited[cur.id] = struct{}{}

		current, ok := s.users[cur.id]
		if !ok {
			continue
		}

		d := s.dist(u.Coords, current.Coords)
		if _, direct := u.Friends[cur.id]; !direct && d <= maxMeters && !math.IsInf(d, 1) {
			found = append(found, near{id: cur.id, meters: d})
		}

		if cur.depth < 2 {
			next := make([]string, 0, len(current.Friends))
			for friendID := range current.Friends {
				if _, done := visited[friendID]; !done {
					next = append(next, friendID)
				}
			}
			sort.Strings(next)
			for _, friendID := range next {
				queue = append(queue, queued{id: friendID, depth: cur.depth + 1})
			}
		}
	}

	sort.Slice(found, func(i, j int) bool {
		if found[i].meters != found[j].meters {
			return found[i].meters < found[j].meters
		}
		return found[i].id < found[j].id
	})
	ids := make([]string, 0, len(found))
	for _, n := range found {
		ids = append(ids, n.id)
	}
	return ids, nil
}

// Connected reports whether two users are linked through the friend
// network within the given number of hops.
func (s *Store) Connected(userID1, userID2 string, degree int) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, err := s.get(userID1); err != nil {
		return false, err
	}
	if _, err := s.get(userID2); err != nil {
		return false, err
	}
	if userID1 == userID2 {
		return true, nil
	}

	type queued struct {
		id    string
		depth int
	}
	queue := []queued{{id: userID1, depth: 0}}
	visited := map[string]struct{}{userID1: {}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cur.depth >= degree {
			continue
		}
		current, ok := s.users[cur.id]
		if !ok {
			continue
		}
		for friendID := range current.Friends {
			if friendID == userID2 {
				return true, nil
			}
			if _, done := visited[friendID]; !done {
				visited[friendID] = struct{}{}
				queue = append(queue, queued{id: friendID, depth: cur.depth + 1})
			}
		}
	}
	return false, nil
}
