package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/yavin/platform/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by email. Can be used for login
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// Looks up user by uid. Can be used for session resolution
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Atomically adds delta to total_xp, returns the new total
	AddXP(ctx context.Context, uid uuid.UUID, delta int) (int, error)
	// Writes streak counter together with last activity date
	UpdateStreak(ctx context.Context, uid uuid.UUID, streak int, activityDate time.Time) error
}

type ProgressRepositoryI interface {
	// Lists all progress rows of a user
	GetByUser(ctx context.Context, uid uuid.UUID) ([]entity.Progress, error)
	// Fetches a single (user, section) row
	GetSection(ctx context.Context, uid uuid.UUID, sectionID string) (*entity.Progress, error)
	// Upserts completion state. completed_at is only ever set on the first
	// true transition, time spent accumulates
	UpsertCompletion(ctx context.Context, uid uuid.UUID, sectionID string, completed bool, timeSpent int) error
	// Upserts quiz percentage keeping the running maximum
	UpsertQuizScore(ctx context.Context, uid uuid.UUID, sectionID string, percentage int) error
	// Counts sections with a perfect quiz score
	CountPerfect(ctx context.Context, uid uuid.UUID) (int, error)
}

type AchievementsRepositoryI interface {
	// Lists ids of badges already granted to the user
	GrantedIDs(ctx context.Context, uid uuid.UUID) ([]string, error)
	// Idempotent grant insert. Reports whether a new row was created
	Grant(ctx context.Context, uid uuid.UUID, badgeID string) (bool, error)
}

type NewsletterRepositoryI interface {
	// Looks up a subscriber, reporting the unsubscribed flag
	FindByEmail(ctx context.Context, email string) (found, unsubscribed bool, err error)
	// Adds a new subscriber
	Insert(ctx context.Context, email, source string) error
	// Re-activates a previously unsubscribed address
	Resubscribe(ctx context.Context, email string) error
}

type FeedbackRepositoryI interface {
	Insert(ctx context.Context, fb *entity.Feedback) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
