package usecase

import (
	"context"
	"log/slog"

	"forumapi/src/core/domain"
	"forumapi/src/core/ports"
)

// ThreadService handles opening and reading threads.
type ThreadService struct {
	threads  ports.ThreadRepository
	comments ports.CommentRepository
	log      *slog.Logger
}

func NewThreadService(threads ports.ThreadRepository, comments ports.CommentRepository, log *slog.Logger) *ThreadService {
	return &ThreadService{threads: threads, comments: comments, log: log}
}

// AddThread validates the payload (title, body, owner) and stores the thread.
func (s *ThreadService) AddThread(ctx context.Context, payload domain.Payload) (*domain.AddedThread, error) {
	newThread, err := domain.ParseNewThread(payload)
	if err != nil {
		return nil, err
	}

	added, err := s.threads.AddNewThread(ctx, newThread)
	if err != nil {
		return nil, err
	}
	s.log.Info("thread added", "thread_id", added.ID, "owner", added.Owner)
	return added, nil
}

// GetThreadDetail returns the thread with its comments, oldest first. Deleted
// comments keep their place but their content is masked.
func (s *ThreadService) GetThreadDetail(ctx context.Context, threadID string) (*domain.ThreadDetail, error) {
	row, err := s.threads.GetThreadByID(ctx, threadID)
	if err != nil {
		return nil, err
	}

	detail, err := domain.ParseThreadDetail(row.Payload())
	if err != nil {
		return nil, err
	}
	detail.Username = row.Username

	rows, err := s.comments.GetCommentsByThreadID(ctx, threadID)
	if err != nil {
		return nil, err
	}

	detail.Comments = make([]domain.CommentView, 0, len(rows))
	for _, c := range rows {
		detail.Comments = append(detail.Comments, c.View())
	}
	return detail, nil
}
