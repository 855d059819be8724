// Package storefront maps external catalog handles onto internal price
// bands. Lookups go through a TTL cache so that storefront-facing pages do
// not hit the database on every render.
package storefront

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/it-techmonkey/yournextblinds-backend/models"
)

// ProductLookup loads a product by its storefront handle.
type ProductLookup interface {
	GetProductByCode(code string) (*models.Product, error)
}

// Resolver resolves storefront handles to price bands through a TTL cache.
// Concurrent misses for the same handle are coalesced into one backing
// lookup. Failed lookups are not cached, so a handle that appears later in
// the catalog resolves as soon as it exists.
type Resolver struct {
	lookup ProductLookup
	ttl    time.Duration
	now    func() time.Time

	group singleflight.Group
	mu    sync.RWMutex
	cache map[string]cacheEntry
}

type cacheEntry struct {
	band      *models.PriceBand
	expiresAt time.Time
}

// NewResolver builds a Resolver. A nil now defaults to time.Now; tests
// inject their own clock.
func NewResolver(lookup ProductLookup, ttl time.Duration, now func() time.Time) *Resolver {
	if now == nil {
		now = time.Now
	}
	return &Resolver{
		lookup: lookup,
		ttl:    ttl,
		now:    now,
		cache:  make(map[string]cacheEntry),
	}
}

// Resolve returns the price band for a handle. models.ErrProductNotFound
// and models.ErrProductNotPriced pass through from the backing lookup.
func (r *Resolver) Resolve(handle string) (*models.PriceBand, error) {
	r.mu.RLock()
	entry, ok := r.cache[handle]
	r.mu.RUnlock()
	if ok && r.now().Before(entry.expiresAt) {
		return entry.band, nil
	}

	band, err, _ := r.group.Do(handle, func() (interface{}, error) {
		product, err := r.lookup.GetProductByCode(handle)
		if err != nil {
			return nil, err
		}
		if product.PriceBand == nil {
			return nil, models.ErrProductNotPriced
		}
		r.mu.Lock()
		r.cache[handle] = cacheEntry{
			band:      product.PriceBand,
			expiresAt: r.now().Add(r.ttl),
		}
		r.mu.Unlock()
		return product.PriceBand, nil
	})
	if err != nil {
		return nil, err
	}
	return band.(*models.PriceBand), nil
}
