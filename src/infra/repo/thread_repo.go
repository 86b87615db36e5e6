package repo

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"forumapi/src/core/domain"
	"forumapi/src/core/ports"
	"forumapi/src/infra/db"
)

var _ ports.ThreadRepository = (*ThreadRepository)(nil)

// ThreadRepository implements ports.ThreadRepository using pgx.
type ThreadRepository struct {
	pool  *pgxpool.Pool
	ids   ports.IDGenerator
	clock ports.Clock
	log   *slog.Logger
}

// NewThreadRepository constructs a thread repository backed by Postgres.
func NewThreadRepository(pg *db.Postgres, ids ports.IDGenerator, clock ports.Clock, log *slog.Logger) *ThreadRepository {
	return &ThreadRepository{
		pool:  pg.Pool,
		ids:   ids,
		clock: clock,
		log:   log,
	}
}

func (r *ThreadRepository) Health(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (r *ThreadRepository) AddNewThread(ctx context.Context, thread *domain.NewThread) (*domain.AddedThread, error) {
	const q = `
		INSERT INTO threads (id, title, body, date, owner)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, title, owner
	`
	id := "thread-" + r.ids.NewID()

	var added domain.AddedThread
	if err := r.pool.QueryRow(ctx, q, id, thread.Title, thread.Body, r.clock.Now(), thread.Owner).
		Scan(&added.ID, &added.Title, &added.Owner); err != nil {
		return nil, err
	}

	r.log.Debug("thread inserted", "thread_id", added.ID)
	return domain.ParseAddedThread(domain.Payload{
		"id":    added.ID,
		"title": added.Title,
		"owner": added.Owner,
	})
}

func (r *ThreadRepository) GetThreadByID(ctx context.Context, threadID string) (*domain.ThreadRow, error) {
	const q = `
		SELECT t.id, t.title, t.body, t.date, t.owner, COALESCE(u.username, '')
		FROM threads t
		LEFT JOIN users u ON u.id = t.owner
		WHERE t.id = $1
	`
	var (
		row  domain.ThreadRow
		date time.Time
	)
	if err := r.pool.QueryRow(ctx, q, threadID).Scan(
		&row.ID, &row.Title, &row.Body, &date, &row.Owner, &row.Username,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError(domain.MessageThreadNotFound)
		}
		return nil, err
	}
	row.Date = domain.FormatDate(date)
	return &row, nil
}

func (r *ThreadRepository) VerifyAvailableThread(ctx context.Context, threadID string) error {
	const q = `SELECT EXISTS (SELECT 1 FROM threads WHERE id = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, q, threadID).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return domain.NewNotFoundError(domain.MessageThreadNotFound)
	}
	return nil
}
