package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/yavin/platform/internal/error_values"
	"github.com/yavin/platform/pkg/cleanup"
)

type AchievementsRepository struct {
	conn PgConnection
}

func NewAchievementsRepo(cfg DBConfig) *AchievementsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for achievementsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for achievementsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &AchievementsRepository{
		conn: pool,
	}
}

func NewAchievementsRepoWithConn(conn PgConnection) *AchievementsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for achievementsRepo: " + err.Error())
	}
	return &AchievementsRepository{
		conn: conn,
	}
}

func (ar *AchievementsRepository) GrantedIDs(ctx context.Context, uid uuid.UUID) ([]string, error) {
	rows, err := ar.conn.Query(ctx,
		`SELECT badge_id FROM user_achievements WHERE user_id = $1;`,
		uid,
	)
	if err != nil {
		return nil, errors.New("getting granted badges error: " + err.Error())
	}
	defer rows.Close()
	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, errors.New("badge row parsing error: " + err.Error())
		}
		ids = append(ids, id)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected badge rows error: " + rows.Err().Error())
	}
	return ids, nil
}

// Grant relies on the (user_id, badge_id) uniqueness constraint so that
// concurrent evaluation calls never double-grant. A conflicting insert is
// a no-op and reported as not-inserted
func (ar *AchievementsRepository) Grant(ctx context.Context, uid uuid.UUID, badgeID string) (bool, error) {
	ct, err := ar.conn.Exec(ctx,
		`INSERT INTO user_achievements (user_id, badge_id) VALUES ($1, $2) ON CONFLICT (user_id, badge_id) DO NOTHING;`,
		uid,
		badgeID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return false, errorvalues.ErrUserNotFound
			}
		}
		return false, errors.New("granting badge error: " + err.Error())
	}
	return ct.RowsAffected() > 0, nil
}
