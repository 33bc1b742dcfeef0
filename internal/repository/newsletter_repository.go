package repository

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yavin/platform/pkg/cleanup"
	"github.com/yavin/platform/pkg/entity"
)

type NewsletterRepository struct {
	conn PgConnection
}

func NewNewsletterRepo(cfg DBConfig) *NewsletterRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for newsletterRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for newsletterRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &NewsletterRepository{
		conn: pool,
	}
}

func NewNewsletterRepoWithConn(conn PgConnection) *NewsletterRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for newsletterRepo: " + err.Error())
	}
	return &NewsletterRepository{
		conn: conn,
	}
}

func (nr *NewsletterRepository) FindByEmail(ctx context.Context, email string) (bool, bool, error) {
	var unsubscribed bool
	row := nr.conn.QueryRow(ctx,
		`SELECT unsubscribed FROM newsletter_subscribers WHERE email = $1;`,
		email,
	)
	if err := row.Scan(&unsubscribed); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, false, nil
		}
		return false, false, errors.New("searching subscriber error: " + err.Error())
	}
	return true, unsubscribed, nil
}

func (nr *NewsletterRepository) Insert(ctx context.Context, email, source string) error {
	_, err := nr.conn.Exec(ctx,
		`INSERT INTO newsletter_subscribers (email, source) VALUES ($1, $2);`,
		email,
		source,
	)
	if err != nil {
		return errors.New("inserting subscriber error: " + err.Error())
	}
	return nil
}

func (nr *NewsletterRepository) Resubscribe(ctx context.Context, email string) error {
	_, err := nr.conn.Exec(ctx,
		`UPDATE newsletter_subscribers SET unsubscribed = false, subscribed_at = NOW() WHERE email = $1;`,
		email,
	)
	if err != nil {
		return errors.New("resubscribing error: " + err.Error())
	}
	return nil
}

type FeedbackRepository struct {
	conn PgConnection
}

func NewFeedbackRepo(cfg DBConfig) *FeedbackRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for feedbackRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for feedbackRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &FeedbackRepository{
		conn: pool,
	}
}

func NewFeedbackRepoWithConn(conn PgConnection) *FeedbackRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for feedbackRepo: " + err.Error())
	}
	return &FeedbackRepository{
		conn: conn,
	}
}

func (fr *FeedbackRepository) Insert(ctx context.Context, fb *entity.Feedback) error {
	if fb == nil {
		return errors.New("feedback is nil")
	}
	_, err := fr.conn.Exec(ctx,
		`INSERT INTO feedback (user_id, name, email, rating, message, page_url) VALUES ($1, $2, $3, $4, $5, $6);`,
		fb.UserID,
		fb.Name,
		fb.Email,
		fb.Rating,
		fb.Message,
		fb.PageURL,
	)
	if err != nil {
		return errors.New("inserting feedback error: " + err.Error())
	}
	return nil
}
