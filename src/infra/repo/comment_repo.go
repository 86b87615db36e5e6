package repo

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"forumapi/src/core/domain"
	"forumapi/src/core/ports"
	"forumapi/src/infra/db"
)

var _ ports.CommentRepository = (*CommentRepository)(nil)

// CommentRepository implements ports.CommentRepository using pgx.
type CommentRepository struct {
	pool  *pgxpool.Pool
	ids   ports.IDGenerator
	clock ports.Clock
	log   *slog.Logger
}

// NewCommentRepository constructs a comment repository backed by Postgres.
func NewCommentRepository(pg *db.Postgres, ids ports.IDGenerator, clock ports.Clock, log *slog.Logger) *CommentRepository {
	return &CommentRepository{
		pool:  pg.Pool,
		ids:   ids,
		clock: clock,
		log:   log,
	}
}

func (r *CommentRepository) Health(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (r *CommentRepository) AddComment(ctx context.Context, comment *domain.NewComment) (*domain.AddedComment, error) {
	const q = `
		INSERT INTO comments (id, thread_id, owner, content, date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, content, owner
	`
	id := "comment-" + r.ids.NewID()

	var added domain.AddedComment
	if err := r.pool.QueryRow(ctx, q, id, comment.ThreadID, comment.Owner, comment.Content, r.clock.Now()).
		Scan(&added.ID, &added.Content, &added.Owner); err != nil {
		return nil, err
	}

	r.log.Debug("comment inserted", "comment_id", added.ID, "thread_id", comment.ThreadID)
	return domain.ParseAddedComment(domain.Payload{
		"id":      added.ID,
		"content": added.Content,
		"owner":   added.Owner,
	})
}

func (r *CommentRepository) VerifyCommentOwner(ctx context.Context, commentID, ownerID string) error {
	const q = `SELECT EXISTS (SELECT 1 FROM comments WHERE id = $1 AND owner = $2)`

	var owned bool
	if err := r.pool.QueryRow(ctx, q, commentID, ownerID).Scan(&owned); err != nil {
		return err
	}
	if !owned {
		return domain.NewForbiddenError(domain.MessageNotCommentOwner)
	}
	return nil
}

func (r *CommentRepository) VerifyCommentInThread(ctx context.Context, commentID, threadID string) error {
	const q = `SELECT EXISTS (SELECT 1 FROM comments WHERE id = $1 AND thread_id = $2)`

	var found bool
	if err := r.pool.QueryRow(ctx, q, commentID, threadID).Scan(&found); err != nil {
		return err
	}
	if !found {
		return domain.NewNotFoundError(domain.MessageCommentNotFound)
	}
	return nil
}

func (r *CommentRepository) GetCommentsByThreadID(ctx context.Context, threadID string) ([]domain.CommentRow, error) {
	const q = `
		SELECT c.id, COALESCE(u.username, ''), c.date, c.content, c.is_deleted
		FROM comments c
		LEFT JOIN users u ON u.id = c.owner
		WHERE c.thread_id = $1
		ORDER BY c.date ASC
	`
	rows, err := r.pool.Query(ctx, q, threadID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []domain.CommentRow{}
	for rows.Next() {
		var (
			c    domain.CommentRow
			date time.Time
		)
		if err := rows.Scan(&c.ID, &c.Username, &date, &c.Content, &c.IsDeleted); err != nil {
			return nil, err
		}
		c.Date = domain.FormatDate(date)
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// DeleteComment soft-deletes in one statement; the row is kept.
func (r *CommentRepository) DeleteComment(ctx context.Context, commentID string) error {
	const q = `
		UPDATE comments
		SET is_deleted = TRUE
		WHERE id = $1
	`
	res, err := r.pool.Exec(ctx, q, commentID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.NewNotFoundError(domain.MessageCommentNotFound)
	}
	return nil
}
