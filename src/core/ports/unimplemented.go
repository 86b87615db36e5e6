package ports

import (
	"context"

	"forumapi/src/core/domain"
)

// UnimplementedThreadRepository fails every call with domain.ErrNotImplemented.
// Embed it in a partial implementation (a test double, say) so that any method
// the embedder does not override reports the gap instead of silently succeeding.
type UnimplementedThreadRepository struct{}

var _ ThreadRepository = UnimplementedThreadRepository{}

func (UnimplementedThreadRepository) Health(context.Context) error {
	return domain.NewNotImplementedError("THREAD_REPOSITORY.HEALTH")
}

func (UnimplementedThreadRepository) AddNewThread(context.Context, *domain.NewThread) (*domain.AddedThread, error) {
	return nil, domain.NewNotImplementedError("THREAD_REPOSITORY.ADD_NEW_THREAD")
}

func (UnimplementedThreadRepository) GetThreadByID(context.Context, string) (*domain.ThreadRow, error) {
	return nil, domain.NewNotImplementedError("THREAD_REPOSITORY.GET_THREAD_BY_ID")
}

func (UnimplementedThreadRepository) VerifyAvailableThread(context.Context, string) error {
	return domain.NewNotImplementedError("THREAD_REPOSITORY.VERIFY_AVAILABLE_THREAD")
}

// UnimplementedCommentRepository fails every call with domain.ErrNotImplemented.
type UnimplementedCommentRepository struct{}

var _ CommentRepository = UnimplementedCommentRepository{}

func (UnimplementedCommentRepository) Health(context.Context) error {
	return domain.NewNotImplementedError("COMMENT_REPOSITORY.HEALTH")
}

func (UnimplementedCommentRepository) AddComment(context.Context, *domain.NewComment) (*domain.AddedComment, error) {
	return nil, domain.NewNotImplementedError("COMMENT_REPOSITORY.ADD_COMMENT")
}

func (UnimplementedCommentRepository) VerifyCommentOwner(context.Context, string, string) error {
	return domain.NewNotImplementedError("COMMENT_REPOSITORY.VERIFY_COMMENT_OWNER")
}

func (UnimplementedCommentRepository) VerifyCommentInThread(context.Context, string, string) error {
	return domain.NewNotImplementedError("COMMENT_REPOSITORY.VERIFY_COMMENT_IN_THREAD")
}

func (UnimplementedCommentRepository) GetCommentsByThreadID(context.Context, string) ([]domain.CommentRow, error) {
	return nil, domain.NewNotImplementedError("COMMENT_REPOSITORY.GET_COMMENTS_BY_THREAD_ID")
}

func (UnimplementedCommentRepository) DeleteComment(context.Context, string) error {
	return domain.NewNotImplementedError("COMMENT_REPOSITORY.DELETE_COMMENT")
}
