package service

import (
	"context"
	"strconv"
	"time"

	"trivia/internal/cache"
	"trivia/internal/domain"
	"trivia/internal/logger"

	"go.uber.org/zap"
)

// QuizSessionStore keeps the server-side served set of a quiz session.
type QuizSessionStore interface {
	// Served returns the question ids already served in the session.
	Served(ctx context.Context, sessionID string) ([]int64, error)
	// MarkServed records a served question and refreshes the session TTL.
	MarkServed(ctx context.Context, sessionID string, questionID int64) error
	// Clear drops the session.
	Clear(ctx context.Context, sessionID string) error
}

type quizSessionStore struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewQuizSessionStore returns a Redis-backed store, or a no-op store when
// no cache is configured.
func NewQuizSessionStore(c domain.Cache, ttl time.Duration) QuizSessionStore {
	if c == nil {
		return noopQuizSessionStore{}
	}
	return &quizSessionStore{cache: c, ttl: ttl}
}

func (s *quizSessionStore) Served(ctx context.Context, sessionID string) ([]int64, error) {
	members, err := s.cache.SMembers(ctx, cache.QuizSessionKey(sessionID))
	if err != nil {
		return nil, domain.NewCacheError("failed to read quiz session", err)
	}

	ids := make([]int64, 0, len(members))
	for _, m := range members {
		id, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			logger.Get().Warn("Skipping malformed quiz session member",
				zap.String("session_id", sessionID),
				zap.String("member", m))
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *quizSessionStore) MarkServed(ctx context.Context, sessionID string, questionID int64) error {
	key := cache.QuizSessionKey(sessionID)
	if err := s.cache.SAdd(ctx, key, strconv.FormatInt(questionID, 10)); err != nil {
		return domain.NewCacheError("failed to update quiz session", err)
	}
	if s.ttl > 0 {
		if err := s.cache.Expire(ctx, key, s.ttl); err != nil {
			return domain.NewCacheError("failed to refresh quiz session ttl", err)
		}
	}
	return nil
}

func (s *quizSessionStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.cache.Delete(ctx, cache.QuizSessionKey(sessionID)); err != nil {
		return domain.NewCacheError("failed to clear quiz session", err)
	}
	return nil
}

type noopQuizSessionStore struct{}

func (noopQuizSessionStore) Served(context.Context, string) ([]int64, error) { return nil, nil }

func (noopQuizSessionStore) MarkServed(context.Context, string, int64) error { return nil }

func (noopQuizSessionStore) Clear(context.Context, string) error { return nil }
