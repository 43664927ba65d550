package usecase

import (
	"context"
	"strings"
	"time"
)

// ListingCache is satisfied by the redis cache; every method is a no-op
// when the backing store is unavailable.
type ListingCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	InvalidateListings(ctx context.Context) error
}

// listingCacheKey is built from the filter verbatim. The skill filter is
// case-sensitive all the way down to the array-overlap query, so "Go"
// and "go" are different queries and must not share a cache entry.
func listingCacheKey(skills []string) string {
	if len(skills) == 0 {
		return "jobs:list:all"
	}
	return "jobs:list:" + strings.Join(skills, ",")
}
