package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/yavin/platform/internal/error_values"
	"github.com/yavin/platform/pkg/cleanup"
	"github.com/yavin/platform/pkg/entity"
)

type UsersRepository struct {
	conn PgConnection
}

func NewUsersRepo(cfg DBConfig) *UsersRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for usersRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for usersRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &UsersRepository{
		conn: pool,
	}
}

func NewUsersRepoWithConn(conn PgConnection) *UsersRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for usersRepo: " + err.Error())
	}
	return &UsersRepository{
		conn: conn,
	}
}

func (ur *UsersRepository) Create(ctx context.Context, user *entity.User) error {
	if user == nil {
		return errors.New("user is nil")
	}
	_, err := ur.conn.Exec(ctx, `INSERT INTO users (id, email, password_hash, name) VALUES ($1, $2, $3, $4);`,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.Name,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return errorvalues.ErrEmailTaken
			}
		}
		return errors.New("creating user db error: " + err.Error())
	}
	return nil
}

func (ur *UsersRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	row := ur.conn.QueryRow(ctx,
		`SELECT id, email, password_hash, name, created_at, streak_days, total_xp, last_activity_date FROM users WHERE email = $1;`,
		email,
	)
	return scanUser(row)
}

func (ur *UsersRepository) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	row := ur.conn.QueryRow(ctx,
		`SELECT id, email, password_hash, name, created_at, streak_days, total_xp, last_activity_date FROM users WHERE id = $1;`,
		uid,
	)
	return scanUser(row)
}

// AddXP is the only mutation path for total_xp. The increment happens in a
// single statement so concurrent grants to the same user never lose updates
func (ur *UsersRepository) AddXP(ctx context.Context, uid uuid.UUID, delta int) (int, error) {
	row := ur.conn.QueryRow(ctx,
		`UPDATE users SET total_xp = total_xp + $1 WHERE id = $2 RETURNING total_xp;`,
		delta,
		uid,
	)
	var total int
	if err := row.Scan(&total); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, errorvalues.ErrUserNotFound
		}
		return 0, errors.New("adding xp error: " + err.Error())
	}
	return total, nil
}

func (ur *UsersRepository) UpdateStreak(ctx context.Context, uid uuid.UUID, streak int, activityDate time.Time) error {
	ct, err := ur.conn.Exec(ctx,
		`UPDATE users SET streak_days = $1, last_activity_date = $2 WHERE id = $3;`,
		streak,
		activityDate,
		uid,
	)
	if err != nil {
		return errors.New("updating streak error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var user entity.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Name,
		&user.CreatedAt,
		&user.StreakDays,
		&user.TotalXP,
		&user.LastActivityDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user error: " + err.Error())
	}
	return &user, nil
}
