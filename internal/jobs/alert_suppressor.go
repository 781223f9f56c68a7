package jobs

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// CacheAlertSuppressor deduplicates compliance alerts with a TTL cache.
// A raised key expires after the TTL, at which point the next scan alerts
// on the document again.
type CacheAlertSuppressor struct {
	cache *cache.Cache
}

// NewCacheAlertSuppressor creates a suppressor whose keys expire after ttl.
func NewCacheAlertSuppressor(ttl time.Duration) *CacheAlertSuppressor {
	return &CacheAlertSuppressor{
		cache: cache.New(ttl, ttl),
	}
}

// Suppressed reports whether an alert for the key was raised within the TTL.
func (s *CacheAlertSuppressor) Suppressed(key string) bool {
	_, found := s.cache.Get(key)
	return found
}

// Suppress records that an alert for the key was raised.
func (s *CacheAlertSuppressor) Suppress(key string) {
	s.cache.SetDefault(key, struct{}{})
}
