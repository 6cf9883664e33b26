package constants

import (
	"fmt"
	"time"
)

// Redis cache keys and TTL values for report payloads.
// Pattern: bilheteria:{module}:{report}:{event-id}{:params?}

const CACHE_PREFIX = "bilheteria"

// Report payloads are dynamic data; inventory writes invalidate them per
// event, the TTL is only a backstop.
const (
	TTL_REPORT_OVERVIEW = 5 * time.Minute
	TTL_REPORT_DEFAULT  = 5 * time.Minute
	TTL_LEDGER          = 2 * time.Minute
	TTL_FILTER_OPTIONS  = 10 * time.Minute
)

// BuildReportKey builds the cache key for a named report of an event.
func BuildReportKey(report, eventID string) string {
	return fmt.Sprintf("%s:reports:%s:%s", CACHE_PREFIX, report, eventID)
}

// BuildLedgerKey builds the cache key for one concrete ledger query (the
// params string already encodes search/filters/pagination).
func BuildLedgerKey(eventID, params string) string {
	return fmt.Sprintf("%s:ledger:%s:%s", CACHE_PREFIX, eventID, params)
}

// EventCachePattern matches every cached payload of an event, across reports
// and ledgers, for invalidation after an inventory write.
func EventCachePattern(eventID string) string {
	return fmt.Sprintf("%s:*:*%s*", CACHE_PREFIX, eventID)
}
