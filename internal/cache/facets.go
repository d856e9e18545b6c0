package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/moraputalapraveen/hireme4u-backend/pkg/model"
	"github.com/redis/go-redis/v9"
)

const facetKey = "jobs:filter-options"

// FacetCache keeps the distinct-value filter options in redis for a short
// TTL. Every listing request needs them, and they only change on writes.
type FacetCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewFacetCache(client *redis.Client, ttl time.Duration) *FacetCache {
	return &FacetCache{client: client, ttl: ttl}
}

// Get returns the cached options, or nil on a miss or any redis error.
// Callers fall back to the store.
func (f *FacetCache) Get(ctx context.Context) *model.FilterOptions {
	if f == nil || f.client == nil {
		return nil
	}
	raw, err := f.client.Get(ctx, facetKey).Bytes()
	if err != nil {
		return nil
	}
	var opts model.FilterOptions
	if err := json.Unmarshal(raw, &opts); err != nil {
		return nil
	}
	return &opts
}

// Set stores the options. Errors are ignored; the cache is best effort.
func (f *FacetCache) Set(ctx context.Context, opts *model.FilterOptions) {
	if f == nil || f.client == nil || opts == nil {
		return
	}
	raw, err := json.Marshal(opts)
	if err != nil {
		return
	}
	f.client.Set(ctx, facetKey, raw, f.ttl)
}

// Invalidate drops the cached options after job writes or deletes.
func (f *FacetCache) Invalidate(ctx context.Context) {
	if f == nil || f.client == nil {
		return
	}
	f.client.Del(ctx, facetKey)
}
