package catalog

import (
	"context"
	"sync"
	"time"

	"brick-manager/feature/resolve"

	"golang.org/x/sync/singleflight"
)

// ContextProvider serves TTL-cached resolution contexts built from the
// mapping tables. It is constructor-injected with an explicit lifetime
// (application-scoped) rather than held as package state.
type ContextProvider struct {
	store *Store
	ttl   time.Duration

	mu      sync.RWMutex
	cached  *resolve.Context
	builtAt time.Time

	sf singleflight.Group

	// now is swapped in tests to control expiry.
	now func() time.Time
}

// NewContextProvider creates a provider. A ttl of zero disables caching.
func NewContextProvider(store *Store, ttl time.Duration) *ContextProvider {
	return &ContextProvider{store: store, ttl: ttl, now: time.Now}
}

// Get returns a resolution context, rebuilding from the store when the
// cached copy is missing or expired. Concurrent rebuilds collapse into a
// single store load.
func (p *ContextProvider) Get(ctx context.Context) (*resolve.Context, error) {
	// Fast path: cached and fresh
	p.mu.RLock()
	cached, builtAt := p.cached, p.builtAt
	p.mu.RUnlock()

	if cached != nil && p.fresh(builtAt) {
		return cached, nil
	}

	result, err, _ := p.sf.Do("context", func() (interface{}, error) {
		// Double-check after acquiring the singleflight slot
		p.mu.RLock()
		cached, builtAt := p.cached, p.builtAt
		p.mu.RUnlock()

		if cached != nil && p.fresh(builtAt) {
			return cached, nil
		}

		rebuilt, err := p.store.BuildContext(ctx)
		if err != nil {
			return nil, err
		}

		p.mu.Lock()
		p.cached = rebuilt
		p.builtAt = p.now()
		p.mu.Unlock()

		return rebuilt, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*resolve.Context), nil
}

// Invalidate drops the cached context, forcing the next Get to rebuild.
// Called after a self-heal write-back so corrections become visible.
func (p *ContextProvider) Invalidate() {
	p.mu.Lock()
	p.cached = nil
	p.mu.Unlock()
}

func (p *ContextProvider) fresh(builtAt time.Time) bool {
	if p.ttl == 0 {
		return false
	}
	return p.now().Sub(builtAt) <= p.ttl
}
