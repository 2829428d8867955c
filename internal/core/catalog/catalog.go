// Package catalog holds the static menu: seeded categories and items plus
// pure filter and search helpers. Nothing here mutates at runtime; callers
// that need to change an item (the cart) copy it first.
package catalog

import (
	"sort"
	"strings"

	"github.com/savoria/storefront/internal/core/domain"
)

// Catalog serves read-only menu data.
type Catalog struct {
	categories []domain.Category
	items      []domain.MenuItem
	byID       map[string]domain.MenuItem
}

// New builds a catalog over the given seed data. Use Default() for the
// built-in menu.
func New(categories []domain.Category, items []domain.MenuItem) *Catalog {
	byID := make(map[string]domain.MenuItem, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}
	return &Catalog{categories: categories, items: items, byID: byID}
}

// Default returns a catalog seeded with the restaurant's standard menu.
func Default() *Catalog {
	return New(seedCategories, seedItems)
}

// Categories returns active categories ordered by display order.
func (c *Catalog) Categories() []domain.Category {
	out := make([]domain.Category, 0, len(c.categories))
	for _, cat := range c.categories {
		if cat.IsActive {
			out = append(out, cat)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DisplayOrder < out[j].DisplayOrder })
	return out
}

// Items returns every menu item, available or not.
func (c *Catalog) Items() []domain.MenuItem {
	out := make([]domain.MenuItem, len(c.items))
	copy(out, c.items)
	return out
}

// ItemByID returns the item and whether it exists.
func (c *Catalog) ItemByID(id string) (domain.MenuItem, bool) {
	it, ok := c.byID[id]
	return it, ok
}

// ItemsByCategory returns all items in the given category.
func (c *Catalog) ItemsByCategory(categoryID string) []domain.MenuItem {
	var out []domain.MenuItem
	for _, it := range c.items {
		if it.Category == categoryID {
			out = append(out, it)
		}
	}
	return out
}

// AvailableItems returns only items currently flagged available.
func (c *Catalog) AvailableItems() []domain.MenuItem {
	var out []domain.MenuItem
	for _, it := range c.items {
		if it.IsAvailable {
			out = append(out, it)
		}
	}
	return out
}

// Search matches the term case-insensitively against item names,
// descriptions and ingredients.
func (c *Catalog) Search(term string) []domain.MenuItem {
	term = strings.ToLower(term)
	var out []domain.MenuItem
	for _, it := range c.items {
		if strings.Contains(strings.ToLower(it.Name), term) ||
			strings.Contains(strings.ToLower(it.Description), term) {
			out = append(out, it)
			continue
		}
		for _, ing := range it.Ingredients {
			if strings.Contains(strings.ToLower(ing), term) {
				out = append(out, it)
				break
			}
		}
	}
	return out
}

// FilterByDietary returns items carrying every requested tag. An empty
// filter returns the whole menu.
func (c *Catalog) FilterByDietary(tags []domain.DietaryTag) []domain.MenuItem {
	if len(tags) == 0 {
		return c.Items()
	}
	var out []domain.MenuItem
	for _, it := range c.items {
		all := true
		for _, tag := range tags {
			if !it.HasDietary(tag) {
				all = false
				break
			}
		}
		if all {
			out = append(out, it)
		}
	}
	return out
}
