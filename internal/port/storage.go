package port

import "context"

// KeyValueStore is the durable storage collaborator. Values are serialized
// strings keyed by well-known names; a missing key reads back as "".
type KeyValueStore interface {
	// Get returns the stored value, or "" with a nil error when absent
	Get(ctx context.Context, key string) (string, error)

	// Set writes the value, replacing any previous one
	Set(ctx context.Context, key string, value string) error

	// Delete removes the key; deleting an absent key is not an error
	Delete(ctx context.Context, key string) error
}
