package domain

import "time"

// CartLine is one cart entry: a menu item snapshot, a quantity and the
// ordered customization labels chosen for it.
//
// Two lines are mergeable only when their menu item IDs match and their
// customization lists are equal element by element, in order. The same
// labels in a different order produce a separate line.
type CartLine struct {
	ID                  string    `json:"id"`
	MenuItem            MenuItem  `json:"menuItem"`
	Quantity            int       `json:"quantity"`
	Customizations      []string  `json:"customizations,omitempty"`
	SpecialInstructions string    `json:"specialInstructions,omitempty"`
	TotalPrice          float64   `json:"totalPrice"`
	AddedAt             time.Time `json:"addedAt"`
}

// SameSelection reports whether a line refers to the same menu item with the
// same customizations in the same order.
func (l CartLine) SameSelection(menuItemID string, customizations []string) bool {
	if l.MenuItem.ID != menuItemID {
		return false
	}
	if len(l.Customizations) != len(customizations) {
		return false
	}
	for i, c := range l.Customizations {
		if c != customizations[i] {
			return false
		}
	}
	return true
}
