package orders

import (
	"context"
	"sync"
	"testing"
	"time"

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

func sampleOrder(id string) domain.Order {
	now := time.Now().Truncate(time.Second)
	return domain.Order{
		ID:             id,
		Subtotal:       20.00,
		Tax:            1.60,
		Total:          21.60,
		Mode:           domain.FulfillmentPickup,
		Status:         domain.OrderStatusConfirmed,
		CreatedAt:      now,
		EstimatedReady: now.Add(45 * time.Minute),
	}
}

func TestHistory_AppendAndList(t *testing.T) {
	ctx := context.Background()
	h := NewHistory(newMockKV())

	first, err := h.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, first)

	require.NoError(t, h.Append(ctx, sampleOrder("ORDER-1")))
	require.NoError(t, h.Append(ctx, sampleOrder("ORDER-2")))

	got, err := h.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "ORDER-1", got[0].ID)
	assert.Equal(t, "ORDER-2", got[1].ID)
}

func TestHistory_TimestampsSurviveRoundTrip(t *testing.T) {
	ctx := context.Background()
	h := NewHistory(newMockKV())

	order := sampleOrder("ORDER-1")
	require.NoError(t, h.Append(ctx, order))

	got, err := h.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, order.CreatedAt.Equal(got[0].CreatedAt))
	assert.True(t, order.EstimatedReady.Equal(got[0].EstimatedReady))
}

func TestHistory_MalformedEntryDegradesToEmpty(t *testing.T) {
	ctx := context.Background()
	kv := newMockKV()
	require.NoError(t, kv.Set(ctx, StorageKey, "[broken"))

	h := NewHistory(kv)
	got, err := h.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	// appending over a malformed entry starts a fresh list
	require.NoError(t, h.Append(ctx, sampleOrder("ORDER-1")))
	got, err = h.List(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
