// Package cart implements the shopping cart state container: an ordered list
// of line items plus the two derived aggregates (total price, item count).
// Aggregates are recomputed from the lines after every mutation, never
// tracked on their own.
package cart

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/savoria/storefront/internal/core/domain"
	"github.com/savoria/storefront/internal/port"
)

// StorageKey is the durable-storage entry mirroring the cart contents.
const StorageKey = "restaurant-cart"

// Store owns the cart slice of state. All mutations are serialized through
// its mutex and mirrored to durable storage; storage failures are logged and
// never surfaced (the in-memory cart stays authoritative for the session).
type Store struct {
	mu        sync.Mutex
	storage   port.KeyValueStore
	logger    port.Logger
	lines     []domain.CartLine
	total     float64
	itemCount int
}

// NewStore creates an empty cart backed by the given storage collaborator.
func NewStore(storage port.KeyValueStore) *Store {
	return &Store{storage: storage, logger: port.NoOpLogger{}}
}

// SetLogger configures the logger used for storage failures.
func (s *Store) SetLogger(logger port.Logger) {
	if logger != nil {
		s.logger = logger
	}
}

// LineUpdate carries a partial line edit. Nil fields are left untouched.
type LineUpdate struct {
	Quantity            *int
	Customizations      []string
	SpecialInstructions *string
}

// AddItem adds quantity units of the menu item with the given customization
// labels. When a line for the same (item, customizations-in-order) selection
// already exists its quantity grows instead of a duplicate line appearing.
// Quantity < 1 is a caller error; availability is not checked here.
func (s *Store) AddItem(ctx context.Context, item domain.MenuItem, quantity int, customizations []string) domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	var line domain.CartLine
	merged := false
	for i := range s.lines {
		if s.lines[i].SameSelection(item.ID, customizations) {
			s.lines[i].Quantity += quantity
			s.lines[i].TotalPrice = float64(s.lines[i].Quantity) * item.Price
			s.lines[i].AddedAt = time.Now()
			line = s.lines[i]
			merged = true
			break
		}
	}
	if !merged {
		line = domain.CartLine{
			ID:             item.ID + "-" + uuid.NewString(),
			MenuItem:       item, // snapshot, not re-fetched later
			Quantity:       quantity,
			Customizations: append([]string(nil), customizations...),
			TotalPrice:     float64(quantity) * item.Price,
			AddedAt:        time.Now(),
		}
		s.lines = append(s.lines, line)
	}

	s.recalculate()
	s.save(ctx)
	return line
}

// RemoveItem deletes the line with the given id. Removing an unknown id is a
// no-op, not an error.
func (s *Store) RemoveItem(ctx context.Context, lineID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.lines[:0]
	for _, l := range s.lines {
		if l.ID != lineID {
			kept = append(kept, l)
		}
	}
	s.lines = kept

	s.recalculate()
	s.save(ctx)
}

// UpdateQuantity sets the line's quantity and recomputes its total. Callers
// wanting to drop a line (quantity <= 0) should use RemoveItem. Unknown ids
// are ignored.
func (s *Store) UpdateQuantity(ctx context.Context, lineID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID == lineID {
			s.lines[i].Quantity = quantity
			s.lines[i].TotalPrice = float64(quantity) * s.lines[i].MenuItem.Price
			break
		}
	}

	s.recalculate()
	s.save(ctx)
}

// UpdateItem merges a partial edit into the line. Escape hatch for special
// instruction and customization edits.
func (s *Store) UpdateItem(ctx context.Context, lineID string, upd LineUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID != lineID {
			continue
		}
		if upd.Quantity != nil {
			s.lines[i].Quantity = *upd.Quantity
			s.lines[i].TotalPrice = float64(*upd.Quantity) * s.lines[i].MenuItem.Price
		}
		if upd.Customizations != nil {
			s.lines[i].Customizations = append([]string(nil), upd.Customizations...)
		}
		if upd.SpecialInstructions != nil {
			s.lines[i].SpecialInstructions = *upd.SpecialInstructions
		}
		break
	}

	s.recalculate()
	s.save(ctx)
}

// Clear empties the cart and resets both aggregates. Called exactly once per
// successful checkout, after the order has been persisted.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	s.total = 0
	s.itemCount = 0
	s.save(ctx)
}

// Load replaces the whole line collection, recomputing aggregates. It does
// not merge with in-memory state and does not write back to storage.
func (s *Store) Load(lines []domain.CartLine) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = append([]domain.CartLine(nil), lines...)
	s.recalculate()
}

// LoadFromStorage hydrates the cart from the persisted entry at startup.
// A missing or malformed entry leaves the cart empty; only the read itself
// can fail.
func (s *Store) LoadFromStorage(ctx context.Context) error {
	raw, err := s.storage.Get(ctx, StorageKey)
	if err != nil {
		return err
	}
	if raw == "" {
		return nil
	}

	var lines []domain.CartLine
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		s.logger.Error("discarding malformed cart entry", map[string]interface{}{
			"key":   StorageKey,
			"error": err.Error(),
		})
		return nil
	}

	s.Load(lines)
	return nil
}

// Lines returns a copy of the current line collection.
func (s *Store) Lines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.CartLine(nil), s.lines...)
}

// Line returns the line with the given id.
func (s *Store) Line(lineID string) (domain.CartLine, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.lines {
		if l.ID == lineID {
			return l, true
		}
	}
	return domain.CartLine{}, false
}

// HasItem reports whether any line references the given menu item.
func (s *Store) HasItem(menuItemID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.lines {
		if l.MenuItem.ID == menuItemID {
			return true
		}
	}
	return false
}

// Total is the sum of all line totals.
func (s *Store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

// ItemCount is the sum of all line quantities.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.itemCount
}

// recalculate rebuilds both aggregates from the lines. Callers hold the lock.
func (s *Store) recalculate() {
	var total float64
	count := 0
	for _, l := range s.lines {
		total += l.TotalPrice
		count += l.Quantity
	}
	s.total = total
	s.itemCount = count
}

// save mirrors the lines to durable storage. Failures are logged, never
// returned: the session cart keeps working from memory. Callers hold the lock.
func (s *Store) save(ctx context.Context) {
	data, err := json.Marshal(s.lines)
	if err != nil {
		s.logger.Error("failed to serialize cart", map[string]interface{}{"error": err.Error()})
		return
	}
	if err := s.storage.Set(ctx, StorageKey, string(data)); err != nil {
		s.logger.Error("failed to persist cart", map[string]interface{}{
			"key":   StorageKey,
			"error": err.Error(),
		})
	}
}
