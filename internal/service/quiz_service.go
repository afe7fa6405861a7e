package service

import (
	"context"

	"trivia/internal/domain"
	"trivia/internal/dto"
	"trivia/internal/logger"
	"trivia/internal/metrics"
	"trivia/internal/selection"
	"trivia/internal/util"

	"go.uber.org/zap"
)

// QuizService draws quiz questions
type QuizService interface {
	NextQuestion(ctx context.Context, req *dto.QuizRequest) (*dto.QuizResponse, error)
}

type quizService struct {
	questions domain.QuestionRepository
	sessions  QuizSessionStore
	// false for the no-op store; new session ids are only handed out when set
	sessionsEnabled bool
}

// NewQuizService creates a new instance of quizService
func NewQuizService(questions domain.QuestionRepository, sessions QuizSessionStore) QuizService {
	if sessions == nil {
		sessions = noopQuizSessionStore{}
	}
	_, noop := sessions.(noopQuizSessionStore)
	return &quizService{
		questions:       questions,
		sessions:        sessions,
		sessionsEnabled: !noop,
	}
}

// NextQuestion returns a random question of the requested scope that was
// not served before. A nil question with Exhausted set ends the quiz.
func (s *quizService) NextQuestion(ctx context.Context, req *dto.QuizRequest) (*dto.QuizResponse, error) {
	categoryID, ok := req.QuizCategory.CategoryID()
	if !ok {
		return nil, domain.NewInvalidArgumentError("quiz_category.id is required")
	}

	state := domain.QuizState{
		CategoryID: categoryID,
		Previous:   append([]int64(nil), req.PreviousQuestions...),
	}

	sessionID := req.SessionID
	if sessionID == "" && req.StartSession && s.sessionsEnabled {
		sessionID = util.NewULID()
	}
	if sessionID != "" {
		stored, err := s.sessions.Served(ctx, sessionID)
		if err != nil {
			// the client list alone still gives a correct exclusion set
			logger.Get().Warn("QuizService: failed to read quiz session",
				zap.String("session_id", sessionID),
				zap.Error(err))
		} else {
			state.Previous = append(state.Previous, stored...)
		}
	}

	pool, err := s.loadPool(ctx, state)
	if err != nil {
		return nil, domain.NewInternalError("failed to load quiz questions", err)
	}

	next, ok := selection.NextQuizQuestion(pool, state)
	if !ok {
		metrics.QuizzesExhausted.Inc()
		if sessionID != "" {
			if err := s.sessions.Clear(ctx, sessionID); err != nil {
				logger.Get().Warn("QuizService: failed to clear quiz session",
					zap.String("session_id", sessionID),
					zap.Error(err))
			}
		}
		return &dto.QuizResponse{
			Success:   true,
			Question:  nil,
			Exhausted: true,
			SessionID: sessionID,
		}, nil
	}

	if sessionID != "" {
		if err := s.sessions.MarkServed(ctx, sessionID, next.ID); err != nil {
			logger.Get().Warn("QuizService: failed to record served question",
				zap.String("session_id", sessionID),
				zap.Int64("question_id", next.ID),
				zap.Error(err))
		}
	}
	metrics.QuizQuestionsServed.WithLabelValues(metrics.QuizScope(state.IsAllCategories())).Inc()

	question := dto.ToQuestionResponse(next)
	return &dto.QuizResponse{
		Success:   true,
		Question:  &question,
		SessionID: sessionID,
	}, nil
}

func (s *quizService) loadPool(ctx context.Context, state domain.QuizState) ([]*domain.Question, error) {
	if state.IsAllCategories() {
		return s.questions.GetAllQuestions(ctx)
	}
	return s.questions.GetQuestionsByCategory(ctx, state.CategoryID)
}
