package cache

import "strings"

const (
	GlobalKeyPrefix = "trivia"
)

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
func GenerateCacheKey(serviceName, objectType, identifier string) string {
	return strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
}

// QuizSessionKey is the Redis set holding the question ids served in a quiz session.
func QuizSessionKey(sessionID string) string {
	return GenerateCacheKey("quiz", "session", sessionID)
}
