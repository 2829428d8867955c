// Package auth implements the customer identity store. Login and
// registration are mocks: any non-empty credentials are accepted, the user
// record is fabricated client-side and a synthetic token is persisted. This
// is a mock boundary, not a security mechanism.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/savoria/storefront/internal/core/domain"
	"github.com/savoria/storefront/internal/port"
)

// Durable storage keys for the customer identity.
const (
	TokenKey = "auth-token"
	UserKey  = "user-data"
)

var (
	ErrEmptyCredentials = errors.New("email and password are required")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	ErrNotAuthenticated = errors.New("not authenticated")
)

// Store holds the current customer identity and authenticated flag.
type Store struct {
	mu            sync.Mutex
	storage       port.KeyValueStore
	logger        port.Logger
	loginDelay    time.Duration
	user          *domain.User
	authenticated bool
}

// NewStore creates an unauthenticated store. loginDelay simulates the
// network latency of the absent backend; tests pass zero.
func NewStore(storage port.KeyValueStore, loginDelay time.Duration) *Store {
	return &Store{storage: storage, logger: port.NoOpLogger{}, loginDelay: loginDelay}
}

func (s *Store) SetLogger(logger port.Logger) {
	if logger != nil {
		s.logger = logger
	}
}

// Login accepts any non-empty email/password pair, fabricates a user whose
// name is the email's local part, persists the token and user record, and
// marks the store authenticated.
func (s *Store) Login(ctx context.Context, email, password string) (domain.User, error) {
	if email == "" || password == "" {
		return domain.User{}, ErrEmptyCredentials
	}

	if err := sleep(ctx, s.loginDelay); err != nil {
		return domain.User{}, err
	}

	user := domain.User{
		ID:    "user-" + uuid.NewString(),
		Name:  strings.SplitN(email, "@", 2)[0],
		Email: email,
		Phone: "+1 (555) 123-4567",
		Preferences: domain.UserPreferences{
			DietaryRestrictions: []domain.DietaryTag{},
			FavoriteItems:       []string{},
		},
		CreatedAt: time.Now(),
	}

	return user, s.establishSession(ctx, user)
}

// Register validates the password pair, then behaves exactly like Login with
// the caller-provided profile details. No account uniqueness exists in this
// mock.
func (s *Store) Register(ctx context.Context, name, email, phone, password, confirm string) (domain.User, error) {
	if email == "" || password == "" {
		return domain.User{}, ErrEmptyCredentials
	}
	if password != confirm {
		return domain.User{}, ErrPasswordMismatch
	}
	if len([]rune(password)) < 6 {
		return domain.User{}, ErrPasswordTooShort
	}

	if err := sleep(ctx, s.loginDelay); err != nil {
		return domain.User{}, err
	}

	user := domain.User{
		ID:    "user-" + uuid.NewString(),
		Name:  name,
		Email: email,
		Phone: phone,
		Preferences: domain.UserPreferences{
			DietaryRestrictions: []domain.DietaryTag{},
			FavoriteItems:       []string{},
		},
		CreatedAt: time.Now(),
	}

	return user, s.establishSession(ctx, user)
}

func (s *Store) establishSession(ctx context.Context, user domain.User) error {
	token := fmt.Sprintf("mock-jwt-token-%d", time.Now().UnixMilli())
	if err := s.storage.Set(ctx, TokenKey, token); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	if err := s.saveUser(ctx, &user); err != nil {
		return err
	}

	s.mu.Lock()
	s.user = &user
	s.authenticated = true
	s.mu.Unlock()
	return nil
}

// Logout clears the in-memory identity and deletes the persisted entries.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	s.user = nil
	s.authenticated = false
	s.mu.Unlock()

	if err := s.storage.Delete(ctx, TokenKey); err != nil {
		s.logger.Error("failed to delete token", map[string]interface{}{"error": err.Error()})
	}
	if err := s.storage.Delete(ctx, UserKey); err != nil {
		s.logger.Error("failed to delete user record", map[string]interface{}{"error": err.Error()})
	}
}

// LoadFromStorage rehydrates the session when both the token and a parseable
// user record are present. Anything missing or malformed leaves the store
// unauthenticated without surfacing an error.
func (s *Store) LoadFromStorage(ctx context.Context) error {
	token, err := s.storage.Get(ctx, TokenKey)
	if err != nil {
		return err
	}
	raw, err := s.storage.Get(ctx, UserKey)
	if err != nil {
		return err
	}
	if token == "" || raw == "" {
		return nil
	}

	var user domain.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		s.logger.Error("discarding malformed user record", map[string]interface{}{
			"key":   UserKey,
			"error": err.Error(),
		})
		return nil
	}

	s.mu.Lock()
	s.user = &user
	s.authenticated = true
	s.mu.Unlock()
	return nil
}

// Current returns a copy of the signed-in user and the authenticated flag.
func (s *Store) Current() (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.authenticated || s.user == nil {
		return domain.User{}, false
	}
	return *s.user, true
}

// ProfileUpdate carries a partial profile edit. Nil fields stay untouched.
type ProfileUpdate struct {
	Name  *string
	Email *string
	Phone *string
}

// UpdateProfile merges the edit into the current user and re-serializes the
// whole record.
func (s *Store) UpdateProfile(ctx context.Context, upd ProfileUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return ErrNotAuthenticated
	}

	if upd.Name != nil {
		s.user.Name = *upd.Name
	}
	if upd.Email != nil {
		s.user.Email = *upd.Email
	}
	if upd.Phone != nil {
		s.user.Phone = *upd.Phone
	}
	return s.saveUser(ctx, s.user)
}

// AddAddress appends a delivery address. The first address, or one flagged
// default, becomes the single default.
func (s *Store) AddAddress(ctx context.Context, addr domain.DeliveryAddress) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return ErrNotAuthenticated
	}

	if addr.ID == "" {
		addr.ID = "addr-" + uuid.NewString()
	}
	if len(s.user.Addresses) == 0 {
		addr.IsDefault = true
	}
	if addr.IsDefault {
		s.clearDefaultAddress()
	}
	s.user.Addresses = append(s.user.Addresses, addr)
	return s.saveUser(ctx, s.user)
}

// UpdateAddress replaces the address with the same id. Marking it default
// clears the flag everywhere else.
func (s *Store) UpdateAddress(ctx context.Context, addr domain.DeliveryAddress) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return ErrNotAuthenticated
	}

	for i := range s.user.Addresses {
		if s.user.Addresses[i].ID != addr.ID {
			continue
		}
		if addr.IsDefault {
			s.clearDefaultAddress()
		}
		s.user.Addresses[i] = addr
		return s.saveUser(ctx, s.user)
	}
	return nil
}

// RemoveAddress deletes the address; removing the default promotes the first
// remaining address.
func (s *Store) RemoveAddress(ctx context.Context, addressID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return ErrNotAuthenticated
	}

	kept := s.user.Addresses[:0]
	for _, a := range s.user.Addresses {
		if a.ID != addressID {
			kept = append(kept, a)
		}
	}
	s.user.Addresses = kept

	if s.user.DefaultAddress() == nil && len(s.user.Addresses) > 0 {
		s.user.Addresses[0].IsDefault = true
	}
	return s.saveUser(ctx, s.user)
}

// AddFavorite records a favorite menu item id, ignoring duplicates.
func (s *Store) AddFavorite(ctx context.Context, menuItemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return ErrNotAuthenticated
	}

	for _, id := range s.user.Preferences.FavoriteItems {
		if id == menuItemID {
			return nil
		}
	}
	s.user.Preferences.FavoriteItems = append(s.user.Preferences.FavoriteItems, menuItemID)
	return s.saveUser(ctx, s.user)
}

// RemoveFavorite drops a favorite menu item id.
func (s *Store) RemoveFavorite(ctx context.Context, menuItemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return ErrNotAuthenticated
	}

	kept := s.user.Preferences.FavoriteItems[:0]
	for _, id := range s.user.Preferences.FavoriteItems {
		if id != menuItemID {
			kept = append(kept, id)
		}
	}
	s.user.Preferences.FavoriteItems = kept
	return s.saveUser(ctx, s.user)
}

func (s *Store) clearDefaultAddress() {
	for i := range s.user.Addresses {
		s.user.Addresses[i].IsDefault = false
	}
}

// saveUser re-serializes the full user record. There is no partial
// persistence.
func (s *Store) saveUser(ctx context.Context, user *domain.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("serialize user: %w", err)
	}
	if err := s.storage.Set(ctx, UserKey, string(data)); err != nil {
		return fmt.Errorf("persist user: %w", err)
	}
	return nil
}

// sleep simulates backend latency while honoring cancellation.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
