package cache

import "context"

// Cache stores serialized read-model payloads. Implementations must
// degrade gracefully: a failed lookup is a miss, a failed write is
// dropped, never an error for the caller.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
	Delete(ctx context.Context, key string)
}

// Noop is wired when no cache backend is configured.
type Noop struct{}

func (Noop) Get(context.Context, string) ([]byte, bool) { return nil, false }
func (Noop) Set(context.Context, string, []byte)        {}
func (Noop) Delete(context.Context, string)             {}
