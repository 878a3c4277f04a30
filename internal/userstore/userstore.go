package userstore

import (
	"fmt"
	"sort"
	"sync"

	"auction-marketplace/internal/auctionerrors"
	"auction-marketplace/internal/distance"
	"auction-marketplace/internal/groupindex"
	"auction-marketplace/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// Store owns every user record. It holds a group index as a field and
// exposes group queries by delegation; user records are referenced, not
// copied, and mutated only through Store methods under the store lock.
type Store struct {
	mu     sync.RWMutex
	users  map[string]*models.User
	groups *groupindex.Index
	dist   distance.Func
}

// New creates an empty Store using the given distance collaborator.
// A nil distFn falls back to the built-in Manhattan approximation.
func New(distFn distance.Func) *Store {
	if distFn == nil {
		distFn = distance.Manhattan
	}
	return &Store{
		users:  make(map[string]*models.User),
		groups: groupindex.New(),
		dist:   distFn,
	}
}

// Add registers a new user. The password is stored as a bcrypt hash.
func (s *Store) Add(userID, password, familyName, firstName string, coords models.Coordinates, address string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("store: hash password for %s: %w", userID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.users[userID] = &models.User{
		UserID:       userID,
		FamilyName:   familyName,
		FirstName:    firstName,
		PasswordHash: hash,
		Coords:       coords,
		Address:      address,
		Balance:      decimal.Zero,
		Friends:      make(map[string]struct{}),
	}
	s.groups.Add(userID)
	return nil
}

// Exists reports whether the user id is registered.
func (s *Store) Exists(userID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.users[userID]
	return ok
}

// Get returns the user record.
func (s *Store) Get(userID string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.get(userID)
}

func (s *Store) get(userID string) (*models.User, error) {
	u, ok := s.users[userID]
	if !ok {
		return nil, fmt.Errorf("store: %q: %w", userID, auctionerrors.ErrUnknownUser)
	}
	return u, nil
}

// Name returns the display name of the user.
func (s *Store) Name(userID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, err := s.get(userID)
	if err != nil {
		return "", err
	}
	return u.Name(), nil
}

// NumUsers returns the number of registered users.
func (s *Store) NumUsers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

// AllIDs returns every registered user id, sorted.
func (s *Store) AllIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.users))
	for id := range s.users {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// PasswordValid checks the given password against the stored hash.
func (s *Store) PasswordValid(userID, password string) bool {
	s.mu.RLock()
	u, ok := s.users[userID]
	s.mu.RUnlock()
	if !ok {
		return false
	}
	return bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password)) == nil
}

// AddFriend records a symmetric friendship between both users.
func (s *Store) AddFriend(userID, friendID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, err := s.get(userID)
	if err != nil {
		return err
	}
	f, err := s.get(friendID)
	if err != nil {
		return err
	}

	u.Friends[friendID] = struct{}{}
	f.Friends[userID] = struct{}{}
	return nil
}

// Friends returns the user's friend ids, sorted.
func (s *Store) Friends(userID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.friends(userID)
}

func (s *Store) friends(userID string) ([]string, error) {
	u, err := s.get(userID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(u.Friends))
	for id := range u.Friends {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// CreditBalance applies a signed delta to the user's balance.
func (s *Store) CreditBalance(userID string, delta decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, err := s.get(userID)
	if err != nil {
		return err
	}
	u.Balance = u.Balance.Add(delta)
	return nil
}

// Balance returns the user's current balance.
func (s *Store) Balance(userID string) (decimal.Decimal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, err := s.get(userID)
	if err != nil {
		return decimal.Zero, err
	}
	return u.Balance, nil
}

// AddRating appends a star rating and returns the new mean. The star
// range is the caller's responsibility.
func (s *Store) AddRating(userID string, stars int) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, err := s.get(userID)
	if err != nil {
		return 0, err
	}
	u.Ratings = append(u.Ratings, stars)
	return u.RatingMean(), nil
}

// RatingMean returns the user's mean rating, 0 if unrated.
func (s *Store) RatingMean(userID string) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, err := s.get(userID)
	if err != nil {
		return 0, err
	}
	return u.RatingMean(), nil
}

// RatingCount returns how many ratings the user has received.
func (s *Store) RatingCount(userID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, err := s.get(userID)
	if err != nil {
		return 0, err
	}
	return len(u.Ratings), nil
}

// CreateGroups partitions the given users into groups by label.
func (s *Store) CreateGroups(userIDs, labels []string) error {
	return s.groups.CreateGroups(userIDs, labels)
}

// GroupMembers returns every user sharing a group with userID.
func (s *Store) GroupMembers(userID string) ([]string, error) {
	return s.groups.GroupMembers(userID)
}

// SameGroup reports whether two users share a group.
func (s *Store) SameGroup(userID1, userID2 string) (bool, error) {
	return s.groups.SameGroup(userID1, userID2)
}

// GroupOf returns the id representing the user's group.
func (s *Store) GroupOf(userID string) (string, error) {
	return s.groups.Find(userID)
}
