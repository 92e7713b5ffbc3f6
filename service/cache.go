// Copyright ©2026 The ngp-dag-layout Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/thleu-ethz-ch/ngp-dag-layout/layered"
)

// resultCache memoizes Optimize results by graph digest, purely as a
// performance optimization around the edges of the core. A cache miss or
// a disabled cache never changes the answer, only the latency of
// producing it.
type resultCache struct {
	client *redis.Client
	ttl    time.Duration
}

// cachedResult is what resultCache stores per digest.
type cachedResult struct {
	Orders [][]int        `json:"orders"`
	Report layered.Report `json:"report"`
}

// newResultCache connects to addr. ttl is how long a cached optimization
// result is trusted before a fresh run is required.
func newResultCache(addr string, ttl time.Duration) *resultCache {
	return &resultCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    ttl,
	}
}

// get returns the cached result for digest, if present and unexpired.
func (c *resultCache) get(ctx context.Context, digest string) (*cachedResult, bool, error) {
	raw, err := c.client.Get(ctx, cacheKey(digest)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var cr cachedResult
	if err := json.Unmarshal(raw, &cr); err != nil {
		return nil, false, err
	}
	return &cr, true, nil
}

// set stores result under digest, expiring after the cache's configured
// TTL.
func (c *resultCache) set(ctx context.Context, digest string, result *cachedResult) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, cacheKey(digest), raw, c.ttl).Err()
}

func cacheKey(digest string) string {
	return "layoutd:result:" + digest
}
