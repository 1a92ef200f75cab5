package user

import "time"

// DefaultCacheSize is the default maximum number of cached records
const DefaultCacheSize = 1000

// DefaultCacheTTL is the default time-to-live for cached records
const DefaultCacheTTL = 5 * time.Minute
