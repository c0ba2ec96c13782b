// Package memory is an in-process data collaborator with the same method set
// as the Postgres store. It backs DATA_BACKEND=memory and handler tests.
package memory

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"blood-donation-api/internal/directory"
	"blood-donation-api/internal/model"
)

type Store struct {
	mu sync.Mutex

	users        map[string]model.User // by id
	tokens       map[string]model.RefreshToken
	profiles     map[string]model.Profile
	appointments []model.Appointment
	requests     []model.BloodRequest
	feedback     []model.Feedback
	camps        []model.Camp

	donors    []model.Donor
	banks     []model.Bank
	inventory []model.InventoryItem

	now func() time.Time
}

// New returns an empty store seeded with the built-in directory data.
func New() *Store {
	return &Store{
		users:     map[string]model.User{},
		tokens:    map[string]model.RefreshToken{},
		profiles:  map[string]model.Profile{},
		donors:    directory.SeedDonors(),
		banks:     directory.SeedBanks(),
		inventory: directory.SeedInventory(),
		now:       time.Now,
	}
}

func (s *Store) Ping(context.Context) error { return nil }

// users

func (s *Store) CreateUserWithProfile(_ context.Context, u *model.User, p *model.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return model.ErrConflict
		}
	}
	now := s.now()
	u.CreatedAt, u.UpdatedAt = now, now
	s.users[u.ID] = *u
	p.UpdatedAt = now
	s.profiles[p.ID] = *p
	return nil
}

func (s *Store) UserByEmail(_ context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, model.ErrNotFound
}

func (s *Store) UserByID(_ context.Context, id string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	return &u, nil
}

// refresh tokens, keyed by id

func (s *Store) CreateRefreshToken(_ context.Context, userID, tokenHash string, expiresAt time.Time) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New().String()
	s.tokens[id] = model.RefreshToken{ID: id, UserID: userID, TokenHash: tokenHash, ExpiresAt: expiresAt, CreatedAt: s.now()}
	return id, nil
}

func (s *Store) RefreshTokenByHash(_ context.Context, tokenHash string) (*model.RefreshToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rt := range s.tokens {
		if rt.TokenHash == tokenHash {
			return &rt, nil
		}
	}
	return nil, model.ErrNotFound
}

func (s *Store) RotateRefreshToken(_ context.Context, oldID, newID, userID, newHash string, newExpiry time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	old, ok := s.tokens[oldID]
	if !ok || old.Revoked {
		return model.ErrConflict
	}
	old.Revoked = true
	old.ReplacedBy = &newID
	s.tokens[oldID] = old
	s.tokens[newID] = model.RefreshToken{ID: newID, UserID: userID, TokenHash: newHash, ExpiresAt: newExpiry, CreatedAt: s.now()}
	return nil
}

func (s *Store) RevokeAllRefreshTokens(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, rt := range s.tokens {
		if rt.UserID == userID && !rt.Revoked {
			rt.Revoked = true
			s.tokens[id] = rt
		}
	}
	return nil
}

// appointments

func (s *Store) ListAppointments(_ context.Context, userID string) ([]model.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Appointment
	for _, a := range s.appointments {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *Store) HasBooking(_ context.Context, userID string, date model.Date, slot string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.booked(userID, date, slot), nil
}

func (s *Store) booked(userID string, date model.Date, slot string) bool {
	return slices.ContainsFunc(s.appointments, func(a model.Appointment) bool {
		return a.UserID == userID && a.Date == date && a.Time == slot
	})
}

func (s *Store) CreateAppointment(_ context.Context, a *model.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.booked(a.UserID, a.Date, a.Time) {
		return model.ErrConflict
	}
	now := s.now()
	a.CreatedAt, a.UpdatedAt = now, now
	s.appointments = append(s.appointments, *a)
	return nil
}

func (s *Store) DeleteAppointment(_ context.Context, id, userID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.appointments, func(a model.Appointment) bool {
		return a.ID == id && a.UserID == userID
	})
	if i < 0 {
		return false, nil
	}
	s.appointments = slices.Delete(s.appointments, i, i+1)
	return true, nil
}

// submissions

func (s *Store) CreateBloodRequest(_ context.Context, r *model.BloodRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.CreatedAt = s.now()
	s.requests = append(s.requests, *r)
	return nil
}

func (s *Store) GetProfile(_ context.Context, userID string) (*model.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[userID]
	if !ok {
		return nil, model.ErrNotFound
	}
	return &p, nil
}

func (s *Store) UpdateProfile(_ context.Context, p *model.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.profiles[p.ID]; !ok {
		return model.ErrNotFound
	}
	s.profiles[p.ID] = *p
	return nil
}

func (s *Store) CreateFeedback(_ context.Context, f *model.Feedback) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	f.CreatedAt = s.now()
	s.feedback = append(s.feedback, *f)
	return nil
}

func (s *Store) CreateCamp(_ context.Context, c *model.Camp) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.CreatedAt = s.now()
	s.camps = append(s.camps, *c)
	return nil
}

// BloodRequests returns a snapshot of submitted requests.
func (s *Store) BloodRequests() []model.BloodRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.requests)
}

// Camps returns a snapshot of hosted camps.
func (s *Store) Camps() []model.Camp {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.camps)
}

// directory

func (s *Store) Donors(context.Context) ([]model.Donor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.donors), nil
}

func (s *Store) Banks(context.Context) ([]model.Bank, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.banks), nil
}

func (s *Store) Inventory(context.Context) ([]model.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.inventory), nil
}
