package seeder

import (
	"context"
	"fmt"
	"strings"

	"trivia/cmd/seed/internal/seedmodels"
	"trivia/internal/domain"

	"go.uber.org/zap"
)

// Result counts what one seeding run did.
type Result struct {
	Inserted          int
	SkippedDuplicates int
	SkippedCategories int
}

// Seeder inserts seed questions into categories that already exist.
type Seeder struct {
	questions  domain.QuestionRepository
	categories domain.CategoryRepository
	tx         domain.TransactionManager
	log        *zap.Logger
}

func New(questions domain.QuestionRepository, categories domain.CategoryRepository, tx domain.TransactionManager, log *zap.Logger) *Seeder {
	return &Seeder{questions: questions, categories: categories, tx: tx, log: log}
}

// Seed runs one transaction per category. Unknown category types and
// questions already stored with the same text are skipped, so the run can
// be repeated.
func (s *Seeder) Seed(ctx context.Context, seed []seedmodels.SeedCategory) (Result, error) {
	var res Result

	stored, err := s.categories.GetAllCategories(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to load categories: %w", err)
	}
	byType := make(map[string]*domain.Category, len(stored))
	for _, c := range stored {
		byType[strings.ToLower(c.Type)] = c
	}

	for _, sc := range seed {
		category, ok := byType[strings.ToLower(strings.TrimSpace(sc.Type))]
		if !ok {
			s.log.Warn("Category not found, skipping", zap.String("category", sc.Type), zap.Int("questions", len(sc.Questions)))
			res.SkippedCategories++
			continue
		}

		var inserted, skipped int
		err := s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
			inserted, skipped = 0, 0
			existing, err := s.questions.GetQuestionsByCategory(txCtx, category.ID)
			if err != nil {
				return fmt.Errorf("error loading questions of %s: %w", category.Type, err)
			}
			seen := make(map[string]struct{}, len(existing))
			for _, q := range existing {
				seen[normalize(q.Question)] = struct{}{}
			}

			for _, sq := range sc.Questions {
				q := domain.NewQuestion(sq.Question, sq.Answer, sq.Difficulty, category.ID)
				if _, dup := seen[normalize(q.Question)]; dup {
					skipped++
					continue
				}
				if err := q.Validate(); err != nil {
					return fmt.Errorf("invalid seed question %q: %w", firstN(q.Question, 50), err)
				}
				if err := s.questions.SaveQuestion(txCtx, q); err != nil {
					return fmt.Errorf("failed to save question %q: %w", firstN(q.Question, 50), err)
				}
				seen[normalize(q.Question)] = struct{}{}
				inserted++
			}
			return nil
		})
		if err != nil {
			return res, fmt.Errorf("seeding %s rolled back: %w", category.Type, err)
		}

		s.log.Info("Seeded category",
			zap.String("category", category.Type),
			zap.Int("inserted", inserted),
			zap.Int("skipped", skipped))
		res.Inserted += inserted
		res.SkippedDuplicates += skipped
	}

	return res, nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func firstN(s string, n int) string {
	r := []rune(s)
	if len(r) < n {
		return s
	}
	return string(r[:n])
}
