package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/yavin/platform/internal/catalog"
	"github.com/yavin/platform/pkg/entity"
)

type RegisterRequest struct {
	Email    string `validate:"required,loose_email"`
	Password string `validate:"required,min=8,max=72"`
	Name     string `validate:"max=100"`
}

type ProgressUpdate struct {
	SectionID string
	Completed bool
	TimeSpent int
}

type QuizSubmission struct {
	Section string
	Score   int
	Total   int
}

type UserServiceI interface {
	// Validates credentials shape, hashes the password, creates the row.
	// Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials and advances the daily streak.
	// Unknown email and wrong password are indistinguishable to the caller
	Login(ctx context.Context, email, password string) (*entity.User, error)
	GetByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// User together with the full progress list, for /auth/me
	Profile(ctx context.Context, uid uuid.UUID) (*entity.User, []entity.Progress, error)
}

type ProgressServiceI interface {
	// Upserts section completion, awards first-completion XP exactly once
	// and always advances the streak
	UpsertProgress(ctx context.Context, uid uuid.UUID, upd *ProgressUpdate) (*entity.ProgressResult, error)
	// Persists the quiz percentage as a running maximum and grants the
	// perfect-score bonus
	RecordQuiz(ctx context.Context, uid uuid.UUID, sub *QuizSubmission) (*entity.QuizResult, error)
	// Scores a submission without persisting anything, for anonymous callers
	ScoreOnly(sub *QuizSubmission) (*entity.QuizResult, error)
}

type BadgeServiceI interface {
	// Evaluates every not-yet-granted badge predicate against fresh state,
	// grants idempotently and returns only badges newly granted in this call
	CheckBadges(ctx context.Context, uid uuid.UUID, trigger string) ([]catalog.Badge, error)
	// Splits the catalog into earned and still-available for the user
	EarnedAndAvailable(ctx context.Context, uid uuid.UUID) (earned, available []catalog.Badge, err error)
}

type CertificateServiceI interface {
	// Either a certificate or the list of core sections still missing
	Generate(ctx context.Context, uid uuid.UUID) (*entity.Certificate, *entity.CertificateEligibility, error)
}

type NewsletterServiceI interface {
	// Subscribes (or re-subscribes) the address, returns the human message
	Subscribe(ctx context.Context, email, source string) (string, error)
}

type FeedbackServiceI interface {
	Submit(ctx context.Context, fb *entity.Feedback) error
}
