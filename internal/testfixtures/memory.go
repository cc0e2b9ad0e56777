package testfixtures

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/example/travel-planner/internal/persistence"
)

// MemoryStore is an in-memory implementation of every repository interface,
// used by service and seeding tests that do not need a real database. All
// methods are safe for concurrent use.
type MemoryStore struct {
	mu          sync.RWMutex
	users       map[string]persistence.User
	sessions    map[string]persistence.Session
	trips       map[string]persistence.Trip
	attractions map[string]persistence.Attraction
	swipes      map[string]persistence.Swipe
	items       map[string]persistence.ItineraryItem
	seq         int
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:       make(map[string]persistence.User),
		sessions:    make(map[string]persistence.Session),
		trips:       make(map[string]persistence.Trip),
		attractions: make(map[string]persistence.Attraction),
		swipes:      make(map[string]persistence.Swipe),
		items:       make(map[string]persistence.ItineraryItem),
	}
}

func (s *MemoryStore) CreateUser(_ context.Context, user persistence.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return persistence.ErrDuplicate
		}
	}
	s.users[user.ID] = user
	return nil
}

func (s *MemoryStore) GetUser(_ context.Context, id string) (persistence.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return persistence.User{}, persistence.ErrNotFound
	}
	return user, nil
}

func (s *MemoryStore) GetUserByEmail(_ context.Context, email string) (persistence.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if strings.EqualFold(user.Email, email) {
			return user, nil
		}
	}
	return persistence.User{}, persistence.ErrNotFound
}

func (s *MemoryStore) CreateSession(_ context.Context, session persistence.Session) (persistence.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[session.Token]; ok {
		return persistence.Session{}, persistence.ErrDuplicate
	}
	s.sessions[session.Token] = session
	return session, nil
}

func (s *MemoryStore) GetSession(_ context.Context, token string) (persistence.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[token]
	if !ok {
		return persistence.Session{}, persistence.ErrNotFound
	}
	return session, nil
}

func (s *MemoryStore) RevokeSession(_ context.Context, token string) (persistence.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[token]
	if !ok || session.RevokedAt != nil {
		return persistence.Session{}, persistence.ErrNotFound
	}
	revokedAt := time.Now().UTC()
	session.RevokedAt = &revokedAt
	s.sessions[token] = session
	return session, nil
}

func (s *MemoryStore) DeleteExpiredSessions(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	for token, session := range s.sessions {
		if session.ExpiresAt.Before(now) {
			delete(s.sessions, token)
		}
	}
	return nil
}

func (s *MemoryStore) CreateTrip(_ context.Context, trip persistence.Trip) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.trips[trip.ID]; ok {
		return persistence.ErrDuplicate
	}
	s.trips[trip.ID] = trip
	return nil
}

func (s *MemoryStore) GetTrip(_ context.Context, id string) (persistence.Trip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	trip, ok := s.trips[id]
	if !ok {
		return persistence.Trip{}, persistence.ErrNotFound
	}
	return trip, nil
}

func (s *MemoryStore) ListTripsByUser(_ context.Context, userID string) ([]persistence.Trip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var trips []persistence.Trip
	for _, trip := range s.trips {
		if trip.UserID == userID {
			trips = append(trips, trip)
		}
	}
	sort.Slice(trips, func(i, j int) bool {
		return trips[i].CreatedAt.After(trips[j].CreatedAt)
	})
	return trips, nil
}

func (s *MemoryStore) CreateAttraction(_ context.Context, attraction persistence.Attraction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.attractions[attraction.ID]; ok {
		return persistence.ErrDuplicate
	}
	s.attractions[attraction.ID] = attraction
	return nil
}

func (s *MemoryStore) GetAttraction(_ context.Context, id string) (persistence.Attraction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	attraction, ok := s.attractions[id]
	if !ok {
		return persistence.Attraction{}, persistence.ErrNotFound
	}
	return attraction, nil
}

func (s *MemoryStore) ListAttractions(_ context.Context, filter persistence.AttractionFilter) ([]persistence.Attraction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var attractions []persistence.Attraction
	for _, attraction := range s.attractions {
		if filter.Destination != "" && attraction.Destination != filter.Destination {
			continue
		}
		if filter.Category != "" && attraction.Category != filter.Category {
			continue
		}
		attractions = append(attractions, attraction)
	}
	sort.Slice(attractions, func(i, j int) bool {
		return attractions[i].Rating > attractions[j].Rating
	})
	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	if len(attractions) > limit {
		attractions = attractions[:limit]
	}
	return attractions, nil
}

func swipeKey(tripID, attractionID, userID string) string {
	return tripID + "/" + attractionID + "/" + userID
}

func (s *MemoryStore) UpsertSwipe(_ context.Context, swipe persistence.Swipe) (persistence.Swipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := swipeKey(swipe.TripID, swipe.AttractionID, swipe.UserID)
	if existing, ok := s.swipes[key]; ok {
		existing.IsLiked = swipe.IsLiked
		s.swipes[key] = existing
		return existing, nil
	}
	s.seq++
	swipe.CreatedAt = swipe.CreatedAt.Add(time.Duration(s.seq) * time.Microsecond)
	s.swipes[key] = swipe
	return swipe, nil
}

func (s *MemoryStore) GetSwipe(_ context.Context, tripID, attractionID, userID string) (persistence.Swipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	swipe, ok := s.swipes[swipeKey(tripID, attractionID, userID)]
	if !ok {
		return persistence.Swipe{}, persistence.ErrNotFound
	}
	return swipe, nil
}

func (s *MemoryStore) ListLikedSwipes(_ context.Context, tripID, userID string) ([]persistence.Swipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var liked []persistence.Swipe
	for _, swipe := range s.swipes {
		if swipe.TripID == tripID && swipe.UserID == userID && swipe.IsLiked {
			liked = append(liked, swipe)
		}
	}
	sort.Slice(liked, func(i, j int) bool {
		return liked[i].CreatedAt.Before(liked[j].CreatedAt)
	})
	return liked, nil
}

func (s *MemoryStore) CountLikedSwipes(_ context.Context, tripID, userID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, swipe := range s.swipes {
		if swipe.TripID == tripID && swipe.UserID == userID && swipe.IsLiked {
			count++
		}
	}
	return count, nil
}

func (s *MemoryStore) CreateItem(_ context.Context, item persistence.ItineraryItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[item.ID]; ok {
		return persistence.ErrDuplicate
	}
	s.items[item.ID] = item
	return nil
}

func (s *MemoryStore) ListItems(_ context.Context, filter persistence.ItineraryFilter) ([]persistence.ItineraryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var items []persistence.ItineraryItem
	for _, item := range s.items {
		if item.TripID != filter.TripID {
			continue
		}
		if filter.Day != nil && item.DayNumber != *filter.Day {
			continue
		}
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].DayNumber != items[j].DayNumber {
			return items[i].DayNumber < items[j].DayNumber
		}
		return items[i].OrderIndex < items[j].OrderIndex
	})
	return items, nil
}

func (s *MemoryStore) ItemExistsForAttraction(_ context.Context, tripID, attractionID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if item.TripID == tripID && item.AttractionID != nil && *item.AttractionID == attractionID {
			return true, nil
		}
	}
	return false, nil
}
