package domain

import "context"

// QuestionRepository defines the interface for question persistence
type QuestionRepository interface {
	// GetAllQuestions returns every question ordered by id
	GetAllQuestions(ctx context.Context) ([]*Question, error)

	// GetQuestionsByCategory returns the questions of one category ordered by id
	GetQuestionsByCategory(ctx context.Context, categoryID int64) ([]*Question, error)

	// GetQuestionByID retrieves a question by its ID, nil when absent
	GetQuestionByID(ctx context.Context, id int64) (*Question, error)

	// SaveQuestion persists a new question and assigns its ID
	SaveQuestion(ctx context.Context, question *Question) error

	// DeleteQuestion removes a question, ErrQuestionNotFound when absent
	DeleteQuestion(ctx context.Context, id int64) error
}

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	// GetAllCategories returns all categories ordered by type
	GetAllCategories(ctx context.Context) ([]*Category, error)

	// GetCategoryByID retrieves a category by its ID, nil when absent
	GetCategoryByID(ctx context.Context, id int64) (*Category, error)
}

// Pinger is implemented by dependencies that support health checks
type Pinger interface {
	Ping(ctx context.Context) error
}

// TransactionManager runs a unit of work atomically
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
