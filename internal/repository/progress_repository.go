package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/yavin/platform/internal/error_values"
	"github.com/yavin/platform/pkg/cleanup"
	"github.com/yavin/platform/pkg/entity"
)

type ProgressRepository struct {
	conn PgConnection
}

func NewProgressRepo(cfg DBConfig) *ProgressRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for progressRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for progressRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &ProgressRepository{
		conn: pool,
	}
}

func NewProgressRepoWithConn(conn PgConnection) *ProgressRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for progressRepo: " + err.Error())
	}
	return &ProgressRepository{
		conn: conn,
	}
}

func (pr *ProgressRepository) GetByUser(ctx context.Context, uid uuid.UUID) ([]entity.Progress, error) {
	rows, err := pr.conn.Query(ctx,
		`SELECT section_id, completed, completed_at, time_spent_seconds, quiz_score, quiz_completed_at
		FROM user_progress WHERE user_id = $1;`,
		uid,
	)
	if err != nil {
		return nil, errors.New("getting progress by uid error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.Progress, 0)
	for rows.Next() {
		p := entity.Progress{}
		err = rows.Scan(&p.SectionID, &p.Completed, &p.CompletedAt, &p.TimeSpentSeconds, &p.QuizScore, &p.QuizCompletedAt)
		if err != nil {
			return nil, errors.New("progress row parsing error: " + err.Error())
		}
		result = append(result, p)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected progress rows error: " + rows.Err().Error())
	}
	return result, nil
}

func (pr *ProgressRepository) GetSection(ctx context.Context, uid uuid.UUID, sectionID string) (*entity.Progress, error) {
	var p entity.Progress
	row := pr.conn.QueryRow(ctx,
		`SELECT section_id, completed, completed_at, time_spent_seconds, quiz_score, quiz_completed_at
		FROM user_progress WHERE user_id = $1 AND section_id = $2;`,
		uid,
		sectionID,
	)
	err := row.Scan(&p.SectionID, &p.Completed, &p.CompletedAt, &p.TimeSpentSeconds, &p.QuizScore, &p.QuizCompletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrProgressNotFound
		}
		return nil, errors.New("getting section progress error: " + err.Error())
	}
	return &p, nil
}

// UpsertCompletion keeps two invariants at the storage level even when
// concurrent updates for the same section interleave: completed_at is set
// once on the first true transition and never cleared, and time spent only
// ever accumulates
func (pr *ProgressRepository) UpsertCompletion(ctx context.Context, uid uuid.UUID, sectionID string, completed bool, timeSpent int) error {
	_, err := pr.conn.Exec(ctx,
		`INSERT INTO user_progress (user_id, section_id, completed, completed_at, time_spent_seconds)
		VALUES ($1, $2, $3, CASE WHEN $3 THEN NOW() END, $4)
		ON CONFLICT (user_id, section_id)
		DO UPDATE SET
			completed = EXCLUDED.completed,
			completed_at = CASE WHEN EXCLUDED.completed THEN COALESCE(user_progress.completed_at, NOW()) ELSE user_progress.completed_at END,
			time_spent_seconds = user_progress.time_spent_seconds + $4;`,
		uid,
		sectionID,
		completed,
		timeSpent,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return errorvalues.ErrUserNotFound
			}
		}
		return errors.New("upserting completion error: " + err.Error())
	}
	return nil
}

// UpsertQuizScore persists the running maximum, a worse retake never
// lowers the stored score
func (pr *ProgressRepository) UpsertQuizScore(ctx context.Context, uid uuid.UUID, sectionID string, percentage int) error {
	_, err := pr.conn.Exec(ctx,
		`INSERT INTO user_progress (user_id, section_id, quiz_score, quiz_completed_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id, section_id)
		DO UPDATE SET
			quiz_score = GREATEST(user_progress.quiz_score, EXCLUDED.quiz_score),
			quiz_completed_at = NOW();`,
		uid,
		sectionID,
		percentage,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return errorvalues.ErrUserNotFound
			}
		}
		return errors.New("upserting quiz score error: " + err.Error())
	}
	return nil
}

func (pr *ProgressRepository) CountPerfect(ctx context.Context, uid uuid.UUID) (int, error) {
	row := pr.conn.QueryRow(ctx,
		`SELECT COUNT(*) FROM user_progress WHERE user_id = $1 AND quiz_score = 100;`,
		uid,
	)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("error counting perfect quizzes: " + err.Error())
	}
	return count, nil
}
