// Package orders persists the customer's order history: an append-only list
// under a single storage key. Orders are immutable once written.
package orders

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/savoria/storefront/internal/core/domain"
	"github.com/savoria/storefront/internal/port"
)

// StorageKey is the durable-storage entry holding the order list.
const StorageKey = "user-orders"

// History reads and appends the persisted order list.
type History struct {
	storage port.KeyValueStore
	logger  port.Logger
}

func NewHistory(storage port.KeyValueStore) *History {
	return &History{storage: storage, logger: port.NoOpLogger{}}
}

func (h *History) SetLogger(logger port.Logger) {
	if logger != nil {
		h.logger = logger
	}
}

// List returns all persisted orders, oldest first. A missing or malformed
// entry degrades to an empty list.
func (h *History) List(ctx context.Context) ([]domain.Order, error) {
	raw, err := h.storage.Get(ctx, StorageKey)
	if err != nil {
		return nil, fmt.Errorf("read order history: %w", err)
	}
	if raw == "" {
		return nil, nil
	}

	var orders []domain.Order
	if err := json.Unmarshal([]byte(raw), &orders); err != nil {
		h.logger.Error("discarding malformed order history", map[string]interface{}{
			"key":   StorageKey,
			"error": err.Error(),
		})
		return nil, nil
	}
	return orders, nil
}

// Append adds an order to the end of the persisted list. The whole list is
// re-serialized; there is no partial write.
func (h *History) Append(ctx context.Context, order domain.Order) error {
	orders, err := h.List(ctx)
	if err != nil {
		return err
	}
	orders = append(orders, order)

	data, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("serialize order history: %w", err)
	}
	if err := h.storage.Set(ctx, StorageKey, string(data)); err != nil {
		return fmt.Errorf("persist order history: %w", err)
	}
	return nil
}
