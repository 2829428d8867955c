package domain

import "time"

// DeliveryAddress is one saved address on a customer profile. At most one
// address per user has IsDefault set.
type DeliveryAddress struct {
	ID           string `json:"id"`
	Label        string `json:"label"` // "Home", "Work", ...
	FullName     string `json:"fullName"`
	Street       string `json:"street"`
	City         string `json:"city"`
	ZipCode      string `json:"zipCode"`
	Phone        string `json:"phone"`
	Instructions string `json:"instructions,omitempty"`
	IsDefault    bool   `json:"isDefault"`
}

// UserPreferences holds dietary restrictions and favorite menu item IDs.
type UserPreferences struct {
	DietaryRestrictions []DietaryTag `json:"dietaryRestrictions"`
	FavoriteItems       []string     `json:"favoriteItems"`
}

// User is the customer identity fabricated by the mock login flow and kept
// in durable storage between sessions.
type User struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Email       string            `json:"email"`
	Phone       string            `json:"phone,omitempty"`
	Addresses   []DeliveryAddress `json:"addresses"`
	Preferences UserPreferences   `json:"preferences"`
	CreatedAt   time.Time         `json:"createdAt"`
}

// DefaultAddress returns the address flagged as default, or nil.
func (u *User) DefaultAddress() *DeliveryAddress {
	for i := range u.Addresses {
		if u.Addresses[i].IsDefault {
			return &u.Addresses[i]
		}
	}
	return nil
}
