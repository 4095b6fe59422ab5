package cache

import (
	"strconv"
	"strings"
)

const (
	GlobalKeyPrefix = "interviewprep"
)

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
// If paramsKey are provided, they are joined by "_" and appended to the cache key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// InterviewSetDetailKey caches the detail view of a completed set.
func InterviewSetDetailKey(setID int64) string {
	return GenerateCacheKey("interview", "set_detail", strconv.FormatInt(setID, 10))
}

// InterviewCompletionLockKey guards concurrent completion of one set.
func InterviewCompletionLockKey(setID int64) string {
	return GenerateCacheKey("interview", "completion_lock", strconv.FormatInt(setID, 10))
}
