package store

import (
	"context"
	"sync"

	"belegplan/internal/household/models"
)

// InMemoryRosterStore keeps households in memory for tests and local
// development.
type InMemoryRosterStore struct {
	mu         sync.RWMutex
	households map[string]rawHousehold
}

type rawHousehold struct {
	mainApplicant models.Member
	members       any // legacy array or keyed map, normalized on read
}

func NewInMemoryRosterStore() *InMemoryRosterStore {
	return &InMemoryRosterStore{households: make(map[string]rawHousehold)}
}

// PutHousehold stores a roster. members may be either historical shape; it is
// normalized when read, the same way the postgres store normalizes raw JSON.
func (s *InMemoryRosterStore) PutHousehold(applicationID string, mainApplicant models.Member, members any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.households[applicationID] = rawHousehold{mainApplicant: mainApplicant, members: members}
}

func (s *InMemoryRosterStore) GetHousehold(_ context.Context, applicationID string) (*models.Household, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	raw, ok := s.households[applicationID]
	if !ok {
		return nil, ErrNotFound
	}
	return &models.Household{
		ApplicationID: applicationID,
		MainApplicant: raw.mainApplicant,
		Members:       models.NormalizeMembers(raw.members),
	}, nil
}

// InMemoryProfileStore keeps financial profiles in memory.
type InMemoryProfileStore struct {
	mu       sync.RWMutex
	profiles map[string]models.FinancialProfile
}

func NewInMemoryProfileStore() *InMemoryProfileStore {
	return &InMemoryProfileStore{profiles: make(map[string]models.FinancialProfile)}
}

func (s *InMemoryProfileStore) PutProfile(personID string, profile models.FinancialProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[personID] = profile
}

func (s *InMemoryProfileStore) GetProfile(_ context.Context, personID string) (models.FinancialProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	profile, ok := s.profiles[personID]
	if !ok {
		return nil, ErrNotFound
	}
	return profile, nil
}
