// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = 10 * time.Minute

// DateLayout is the ISO calendar-date key format used across the API.
const DateLayout = "2006-01-02"

// TimeLayout is the 24-hour wall-clock format used across the API.
const TimeLayout = "15:04"

// MonthLayout is the month query-parameter format.
const MonthLayout = "2006-01"
