package constants

import (
	"fmt"
	"time"
)

// Redis cache keys and TTL values.
// Pattern: majestic:{module}:{operation}:{identifier}:{params?}

// ================== CACHE TTL DURATIONS ==================

const (
	TTL_STATIC_LONG  = 24 * time.Hour // reference collections
	TTL_STATIC_SHORT = 6 * time.Hour  // room layouts

	TTL_SEMI_STATIC_MEDIUM = 1 * time.Hour    // event details
	TTL_SEMI_STATIC_SHORT  = 15 * time.Minute // home/catalogue aggregations

	TTL_DYNAMIC_SHORT = 5 * time.Minute // session listings
)

// ================== REDIS KEY PREFIXES ==================

const (
	CACHE_PREFIX = "majestic"
)

// Event cache keys
const (
	CACHE_KEY_HOME_CONTENT = CACHE_PREFIX + ":events:home"
	CACHE_KEY_CATALOGUE    = CACHE_PREFIX + ":events:catalogue" // + :type:X:genre:Y
	CACHE_KEY_EVENT_DETAIL = CACHE_PREFIX + ":events:detail:"   // + event-id

	CACHE_PATTERN_EVENTS = CACHE_PREFIX + ":events:*"
)

// Session cache keys
const (
	CACHE_KEY_SESSIONS_BY_DATE = CACHE_PREFIX + ":sessions:by_date:" // + YYYY-MM-DD

	CACHE_PATTERN_SESSIONS = CACHE_PREFIX + ":sessions:*"
)

// CatalogueKey builds the cache key for a filtered catalogue view.
func CatalogueKey(eventType, genre string) string {
	return fmt.Sprintf("%s:type:%s:genre:%s", CACHE_KEY_CATALOGUE, eventType, genre)
}

// SessionsByDateKey builds the cache key for the grouped-by-date listing.
func SessionsByDateKey(day string) string {
	return CACHE_KEY_SESSIONS_BY_DATE + day
}
