// Package repo contains the durable storage collaborators for the trip planner.
// The whole trip collection is persisted as one JSON blob under a fixed key,
// so every store is a small key/value table. No business logic lives here.
package repo

import "context"

// DefaultStateKey is the storage key the trip collection is saved under.
const DefaultStateKey = "trip-planner-storage"

// StateStore persists opaque state blobs by key.
// The service layer depends on this interface, not on a concrete backend,
// which allows it to be unit-tested with the in-memory store or a mock.
type StateStore interface {
	// Load returns the blob stored under key, or (nil, nil) if nothing has
	// been saved under that key yet.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save stores blob under key, replacing any previous value.
	Save(ctx context.Context, key string, blob []byte) error
}
