package admin

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/savoria/storefront/internal/core/domain"
)

type mockKV struct {
	mu      sync.Mutex
	entries map[string]string
}

func newMockKV() *mockKV {
	return &mockKV{entries: make(map[string]string)}
}

func (m *mockKV) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.entries[key], nil
}

func (m *mockKV) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
	return nil
}

func (m *mockKV) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

func TestAdminLogin(t *testing.T) {
	ctx := context.Background()
	kv := newMockKV()
	store := NewStore(kv, 0)

	admin, err := store.Login(ctx, "admin@restaurant.com", "password")
	require.NoError(t, err)

	assert.Equal(t, "Admin User", admin.Name)
	assert.Equal(t, domain.AdminRoleSuperAdmin, admin.Role)
	assert.Equal(t, "admin@restaurant.com", admin.Email)

	token, _ := kv.Get(ctx, TokenKey)
	assert.Equal(t, "mock-admin-token", token)

	current, ok := store.Current()
	require.True(t, ok)
	assert.Equal(t, admin.ID, current.ID)
}

func TestAdminLogin_EmptyCredentials(t *testing.T) {
	store := NewStore(newMockKV(), 0)

	_, err := store.Login(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrEmptyCredentials)

	_, ok := store.Current()
	assert.False(t, ok)
}

func TestAdminLogout(t *testing.T) {
	ctx := context.Background()
	kv := newMockKV()
	store := NewStore(kv, 0)

	_, err := store.Login(ctx, "admin@restaurant.com", "password")
	require.NoError(t, err)
	_, err = store.FetchDashboardStats(ctx)
	require.NoError(t, err)

	store.Logout(ctx)

	_, ok := store.Current()
	assert.False(t, ok)
	_, ok = store.Stats()
	assert.False(t, ok, "cached stats cleared on logout")

	token, _ := kv.Get(ctx, TokenKey)
	assert.Empty(t, token)
}

func TestAdminLoadFromStorage(t *testing.T) {
	ctx := context.Background()
	kv := newMockKV()

	first := NewStore(kv, 0)
	admin, err := first.Login(ctx, "admin@restaurant.com", "password")
	require.NoError(t, err)

	rehydrated := NewStore(kv, 0)
	require.NoError(t, rehydrated.LoadFromStorage(ctx))

	current, ok := rehydrated.Current()
	require.True(t, ok)
	assert.Equal(t, admin.ID, current.ID)
}

func TestAdminLoadFromStorage_IndependentOfCustomerKeys(t *testing.T) {
	ctx := context.Background()
	kv := newMockKV()

	// customer entries present, admin entries absent
	_ = kv.Set(ctx, "auth-token", "mock-jwt-token-1")
	_ = kv.Set(ctx, "user-data", `{"id":"user-1"}`)

	store := NewStore(kv, 0)
	require.NoError(t, store.LoadFromStorage(ctx))
	_, ok := store.Current()
	assert.False(t, ok)
}

func TestFetchDashboardStats(t *testing.T) {
	store := NewStore(newMockKV(), 0)

	stats, err := store.FetchDashboardStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 45, stats.TodayOrders)
	assert.Equal(t, 1250.50, stats.TodaySales)
	assert.Len(t, stats.PopularItems, 3)
	assert.Len(t, stats.RecentOrders, 2)

	cached, ok := store.Stats()
	require.True(t, ok)
	assert.Equal(t, stats.TodayOrders, cached.TodayOrders)
}
