// Package admin implements the restaurant-side store: a mock login fully
// independent of the customer auth flow, plus the dashboard statistics
// snapshot. Stats are static mock data until a real backend exists.
package admin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/savoria/storefront/internal/core/domain"
	"github.com/savoria/storefront/internal/port"
)

// Durable storage keys for the admin identity.
const (
	TokenKey = "adminToken"
	UserKey  = "adminUser"
)

var ErrEmptyCredentials = errors.New("email and password are required")

// Store holds the admin identity and the last fetched dashboard snapshot.
type Store struct {
	mu            sync.Mutex
	storage       port.KeyValueStore
	logger        port.Logger
	fetchDelay    time.Duration
	admin         *domain.AdminUser
	authenticated bool
	stats         *domain.DashboardStats
}

// NewStore creates an unauthenticated admin store. fetchDelay simulates
// backend latency for login and stats fetches; tests pass zero.
func NewStore(storage port.KeyValueStore, fetchDelay time.Duration) *Store {
	return &Store{storage: storage, logger: port.NoOpLogger{}, fetchDelay: fetchDelay}
}

func (s *Store) SetLogger(logger port.Logger) {
	if logger != nil {
		s.logger = logger
	}
}

// Login accepts any non-empty credentials and fabricates the fixed admin
// identity. Mock boundary: no verification happens.
func (s *Store) Login(ctx context.Context, email, password string) (domain.AdminUser, error) {
	if email == "" || password == "" {
		return domain.AdminUser{}, ErrEmptyCredentials
	}

	if err := sleep(ctx, s.fetchDelay); err != nil {
		return domain.AdminUser{}, err
	}

	admin := domain.AdminUser{
		ID:    "admin1",
		Email: email,
		Name:  "Admin User",
		Role:  domain.AdminRoleSuperAdmin,
		Permissions: []domain.AdminPermission{
			{Module: "dashboard", Actions: []string{"read"}},
			{Module: "orders", Actions: []string{"create", "read", "update", "delete"}},
			{Module: "menu", Actions: []string{"create", "read", "update", "delete"}},
		},
		RestaurantID: "restaurant1",
		CreatedAt:    time.Now(),
	}

	if err := s.storage.Set(ctx, TokenKey, "mock-admin-token"); err != nil {
		return domain.AdminUser{}, fmt.Errorf("persist admin token: %w", err)
	}
	data, err := json.Marshal(admin)
	if err != nil {
		return domain.AdminUser{}, fmt.Errorf("serialize admin: %w", err)
	}
	if err := s.storage.Set(ctx, UserKey, string(data)); err != nil {
		return domain.AdminUser{}, fmt.Errorf("persist admin: %w", err)
	}

	s.mu.Lock()
	s.admin = &admin
	s.authenticated = true
	s.mu.Unlock()
	return admin, nil
}

// Logout clears the identity, the cached stats and the persisted entries.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	s.admin = nil
	s.authenticated = false
	s.stats = nil
	s.mu.Unlock()

	if err := s.storage.Delete(ctx, TokenKey); err != nil {
		s.logger.Error("failed to delete admin token", map[string]interface{}{"error": err.Error()})
	}
	if err := s.storage.Delete(ctx, UserKey); err != nil {
		s.logger.Error("failed to delete admin record", map[string]interface{}{"error": err.Error()})
	}
}

// LoadFromStorage rehydrates the admin session when both entries are present
// and parseable; otherwise the store stays unauthenticated.
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

	var admin domain.AdminUser
	if err := json.Unmarshal([]byte(raw), &admin); err != nil {
		s.logger.Error("discarding malformed admin record", map[string]interface{}{
			"key":   UserKey,
			"error": err.Error(),
		})
		return nil
	}

	s.mu.Lock()
	s.admin = &admin
	s.authenticated = true
	s.mu.Unlock()
	return nil
}

// Current returns a copy of the signed-in admin and the authenticated flag.
func (s *Store) Current() (domain.AdminUser, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.authenticated || s.admin == nil {
		return domain.AdminUser{}, false
	}
	return *s.admin, true
}

// FetchDashboardStats simulates a stats fetch and caches the snapshot.
func (s *Store) FetchDashboardStats(ctx context.Context) (domain.DashboardStats, error) {
	if err := sleep(ctx, s.fetchDelay); err != nil {
		return domain.DashboardStats{}, err
	}

	stats := mockStats()

	s.mu.Lock()
	s.stats = &stats
	s.mu.Unlock()
	return stats, nil
}

// Stats returns the last fetched snapshot, if any.
func (s *Store) Stats() (domain.DashboardStats, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stats == nil {
		return domain.DashboardStats{}, false
	}
	return *s.stats, true
}

func mockStats() domain.DashboardStats {
	now := time.Now()
	return domain.DashboardStats{
		TodayOrders:       45,
		TodaySales:        1250.50,
		TotalCustomers:    1234,
		AverageOrderValue: 27.80,
		PopularItems: []domain.PopularItem{
			{ID: "1", Name: "Margherita Pizza", OrderCount: 25, Revenue: 312.50},
			{ID: "2", Name: "Chicken Burger", OrderCount: 18, Revenue: 269.82},
			{ID: "3", Name: "Caesar Salad", OrderCount: 15, Revenue: 134.85},
		},
		RecentOrders: []domain.RecentOrder{
			{ID: "12345", UserID: "user1", Total: 45.50, Status: domain.OrderStatusPreparing, CreatedAt: now, EstimatedTime: 25},
			{ID: "12346", UserID: "user2", Total: 32.80, Status: domain.OrderStatusConfirmed, CreatedAt: now, EstimatedTime: 30},
		},
		SalesChart: []domain.SalesPoint{},
	}
}

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
