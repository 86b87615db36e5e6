package usecase

import (
	"context"
	"log/slog"

	"forumapi/src/core/domain"
	"forumapi/src/core/ports"
)

// CommentService handles commenting on threads and removing comments.
type CommentService struct {
	threads  ports.ThreadRepository
	comments ports.CommentRepository
	log      *slog.Logger
}

func NewCommentService(threads ports.ThreadRepository, comments ports.CommentRepository, log *slog.Logger) *CommentService {
	return &CommentService{threads: threads, comments: comments, log: log}
}

// AddComment checks that the thread exists before the payload (content,
// threadId, owner) is validated, so an unknown thread is always NotFound.
func (s *CommentService) AddComment(ctx context.Context, payload domain.Payload) (*domain.AddedComment, error) {
	threadID, _ := payload["threadId"].(string)
	if err := s.threads.VerifyAvailableThread(ctx, threadID); err != nil {
		return nil, err
	}

	newComment, err := domain.ParseNewComment(payload)
	if err != nil {
		return nil, err
	}

	added, err := s.comments.AddComment(ctx, newComment)
	if err != nil {
		return nil, err
	}
	s.log.Info("comment added", "comment_id", added.ID, "thread_id", newComment.ThreadID, "owner", added.Owner)
	return added, nil
}

// DeleteComment soft-deletes a comment owned by the caller. Scope is checked
// before ownership: a comment outside the thread is NotFound, never Forbidden.
func (s *CommentService) DeleteComment(ctx context.Context, req domain.DeleteCommentRequest) error {
	if err := s.comments.VerifyCommentInThread(ctx, req.ID, req.ThreadID); err != nil {
		return err
	}
	if err := s.comments.VerifyCommentOwner(ctx, req.ID, req.Owner); err != nil {
		return err
	}
	if err := s.comments.DeleteComment(ctx, req.ID); err != nil {
		return err
	}
	s.log.Info("comment deleted", "comment_id", req.ID, "thread_id", req.ThreadID)
	return nil
}
