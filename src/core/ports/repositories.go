// Package ports defines interfaces (ports) that connect core domain to infrastructure.
// These interfaces follow the ports and adapters (hexagonal) architecture pattern.
//
// Ports are defined here in the core layer, while implementations (adapters)
// live in src/infra/repo. This ensures the core has no dependency on infrastructure.
package ports

import (
	"context"

	"forumapi/src/core/domain"
)

// Repository is the base interface for all repositories.
// Concrete repositories should embed this and add entity-specific methods.
type Repository interface {
	// Health checks if the underlying storage is reachable.
	Health(ctx context.Context) error
}

// ThreadRepository persists threads.
type ThreadRepository interface {
	Repository

	// AddNewThread stores the thread under a freshly generated "thread-" id.
	AddNewThread(ctx context.Context, thread *domain.NewThread) (*domain.AddedThread, error)
	// GetThreadByID fails with domain.ErrNotFound when the thread is absent.
	GetThreadByID(ctx context.Context, threadID string) (*domain.ThreadRow, error)
	// VerifyAvailableThread fails with domain.ErrNotFound when the thread is absent.
	VerifyAvailableThread(ctx context.Context, threadID string) error
}

// CommentRepository persists comments and enforces their ownership and scope.
type CommentRepository interface {
	Repository

	// AddComment stores the comment under a freshly generated "comment-" id.
	AddComment(ctx context.Context, comment *domain.NewComment) (*domain.AddedComment, error)
	// VerifyCommentOwner fails with domain.ErrForbidden unless ownerID created the comment.
	VerifyCommentOwner(ctx context.Context, commentID, ownerID string) error
	// VerifyCommentInThread fails with domain.ErrNotFound unless the comment
	// exists and belongs to threadID.
	VerifyCommentInThread(ctx context.Context, commentID, threadID string) error
	// GetCommentsByThreadID returns the thread's comments, oldest first.
	// Deleted comments are included with IsDeleted set.
	GetCommentsByThreadID(ctx context.Context, threadID string) ([]domain.CommentRow, error)
	// DeleteComment marks the comment deleted. It fails with domain.ErrNotFound
	// when no comment has that id.
	DeleteComment(ctx context.Context, commentID string) error
}
