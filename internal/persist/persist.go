// Package persist stores the serialized game document. The engine only
// sees opaque bytes under a fixed storage key; backends decide where
// they live.
package persist

import (
	"context"
	"errors"
)

// StorageKey is the single document key the game state is saved under.
const StorageKey = "mogul_game_state"

// ErrNotFound means no document has been saved yet; callers start from
// fresh defaults.
var ErrNotFound = errors.New("saved state not found")

type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, doc []byte) error
}
