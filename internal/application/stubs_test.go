package application

import (
	"context"

	"github.com/example/travel-planner/internal/persistence"
)

type tripRepositoryStub struct {
	trips     map[string]persistence.Trip
	created   []persistence.Trip
	createErr error
	getErr    error
	listErr   error
}

func newTripRepositoryStub(trips ...persistence.Trip) *tripRepositoryStub {
	stub := &tripRepositoryStub{trips: make(map[string]persistence.Trip)}
	for _, trip := range trips {
		stub.trips[trip.ID] = trip
	}
	return stub
}

func (s *tripRepositoryStub) CreateTrip(_ context.Context, trip persistence.Trip) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.trips[trip.ID] = trip
	s.created = append(s.created, trip)
	return nil
}

func (s *tripRepositoryStub) GetTrip(_ context.Context, id string) (persistence.Trip, error) {
	if s.getErr != nil {
		return persistence.Trip{}, s.getErr
	}
	trip, ok := s.trips[id]
	if !ok {
		return persistence.Trip{}, persistence.ErrNotFound
	}
	return trip, nil
}

func (s *tripRepositoryStub) ListTripsByUser(_ context.Context, userID string) ([]persistence.Trip, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	var result []persistence.Trip
	for _, trip := range s.trips {
		if trip.UserID == userID {
			result = append(result, trip)
		}
	}
	return result, nil
}

type attractionRepositoryStub struct {
	attractions map[string]persistence.Attraction
	listResult  []persistence.Attraction
	lastFilter  persistence.AttractionFilter
	listErr     error
	getErr      error
}

func newAttractionRepositoryStub(attractions ...persistence.Attraction) *attractionRepositoryStub {
	stub := &attractionRepositoryStub{attractions: make(map[string]persistence.Attraction)}
	for _, attraction := range attractions {
		stub.attractions[attraction.ID] = attraction
	}
	return stub
}

func (s *attractionRepositoryStub) CreateAttraction(_ context.Context, attraction persistence.Attraction) error {
	s.attractions[attraction.ID] = attraction
	return nil
}

func (s *attractionRepositoryStub) GetAttraction(_ context.Context, id string) (persistence.Attraction, error) {
	if s.getErr != nil {
		return persistence.Attraction{}, s.getErr
	}
	attraction, ok := s.attractions[id]
	if !ok {
		return persistence.Attraction{}, persistence.ErrNotFound
	}
	return attraction, nil
}

func (s *attractionRepositoryStub) ListAttractions(_ context.Context, filter persistence.AttractionFilter) ([]persistence.Attraction, error) {
	s.lastFilter = filter
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.listResult, nil
}

type swipeRepositoryStub struct {
	swipes    []persistence.Swipe
	likeCount int
	upsertErr error
	countErr  error
	listErr   error
}

func (s *swipeRepositoryStub) UpsertSwipe(_ context.Context, swipe persistence.Swipe) (persistence.Swipe, error) {
	if s.upsertErr != nil {
		return persistence.Swipe{}, s.upsertErr
	}
	s.swipes = append(s.swipes, swipe)
	return swipe, nil
}

func (s *swipeRepositoryStub) GetSwipe(_ context.Context, tripID, attractionID, userID string) (persistence.Swipe, error) {
	for _, swipe := range s.swipes {
		if swipe.TripID == tripID && swipe.AttractionID == attractionID && swipe.UserID == userID {
			return swipe, nil
		}
	}
	return persistence.Swipe{}, persistence.ErrNotFound
}

func (s *swipeRepositoryStub) ListLikedSwipes(_ context.Context, tripID, userID string) ([]persistence.Swipe, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	var liked []persistence.Swipe
	for _, swipe := range s.swipes {
		if swipe.TripID == tripID && swipe.UserID == userID && swipe.IsLiked {
			liked = append(liked, swipe)
		}
	}
	return liked, nil
}

func (s *swipeRepositoryStub) CountLikedSwipes(_ context.Context, _, _ string) (int, error) {
	if s.countErr != nil {
		return 0, s.countErr
	}
	return s.likeCount, nil
}

type itineraryRepositoryStub struct {
	items      []persistence.ItineraryItem
	exists     bool
	createErr  error
	existsErr  error
	listErr    error
	lastFilter persistence.ItineraryFilter
}

func (s *itineraryRepositoryStub) CreateItem(_ context.Context, item persistence.ItineraryItem) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.items = append(s.items, item)
	return nil
}

func (s *itineraryRepositoryStub) ListItems(_ context.Context, filter persistence.ItineraryFilter) ([]persistence.ItineraryItem, error) {
	s.lastFilter = filter
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.items, nil
}

func (s *itineraryRepositoryStub) ItemExistsForAttraction(_ context.Context, _, _ string) (bool, error) {
	if s.existsErr != nil {
		return false, s.existsErr
	}
	return s.exists, nil
}

type userRepositoryStub struct {
	users  map[string]persistence.User
	getErr error
}

func newUserRepositoryStub(users ...persistence.User) *userRepositoryStub {
	stub := &userRepositoryStub{users: make(map[string]persistence.User)}
	for _, user := range users {
		stub.users[user.Email] = user
	}
	return stub
}

func (s *userRepositoryStub) CreateUser(_ context.Context, user persistence.User) error {
	s.users[user.Email] = user
	return nil
}

func (s *userRepositoryStub) GetUser(_ context.Context, id string) (persistence.User, error) {
	for _, user := range s.users {
		if user.ID == id {
			return user, nil
		}
	}
	return persistence.User{}, persistence.ErrNotFound
}

func (s *userRepositoryStub) GetUserByEmail(_ context.Context, email string) (persistence.User, error) {
	if s.getErr != nil {
		return persistence.User{}, s.getErr
	}
	user, ok := s.users[email]
	if !ok {
		return persistence.User{}, persistence.ErrNotFound
	}
	return user, nil
}

type sessionRepositoryStub struct {
	sessions    map[string]persistence.Session
	createErr   error
	revokeErr   error
	deleteCalls int
	deleteErr   error
}

func newSessionRepositoryStub(sessions ...persistence.Session) *sessionRepositoryStub {
	stub := &sessionRepositoryStub{sessions: make(map[string]persistence.Session)}
	for _, session := range sessions {
		stub.sessions[session.Token] = session
	}
	return stub
}

func (s *sessionRepositoryStub) CreateSession(_ context.Context, session persistence.Session) (persistence.Session, error) {
	if s.createErr != nil {
		return persistence.Session{}, s.createErr
	}
	s.sessions[session.Token] = session
	return session, nil
}

func (s *sessionRepositoryStub) GetSession(_ context.Context, token string) (persistence.Session, error) {
	session, ok := s.sessions[token]
	if !ok {
		return persistence.Session{}, persistence.ErrNotFound
	}
	return session, nil
}

func (s *sessionRepositoryStub) RevokeSession(_ context.Context, token string) (persistence.Session, error) {
	if s.revokeErr != nil {
		return persistence.Session{}, s.revokeErr
	}
	session, ok := s.sessions[token]
	if !ok || session.RevokedAt != nil {
		return persistence.Session{}, persistence.ErrNotFound
	}
	revoked := session.CreatedAt
	session.RevokedAt = &revoked
	s.sessions[token] = session
	return session, nil
}

func (s *sessionRepositoryStub) DeleteExpiredSessions(_ context.Context) error {
	s.deleteCalls++
	return s.deleteErr
}
