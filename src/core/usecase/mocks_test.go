package usecase

import (
	"context"
	"io"
	"log/slog"

	"forumapi/src/core/domain"
	"forumapi/src/core/ports"
)

// --- Mocks ---

// mockThreadRepository overrides only the methods a test sets; the rest
// fall through to the unimplemented base.
type mockThreadRepository struct {
	ports.UnimplementedThreadRepository

	addNewThreadFunc          func(thread *domain.NewThread) (*domain.AddedThread, error)
	getThreadByIDFunc         func(threadID string) (*domain.ThreadRow, error)
	verifyAvailableThreadFunc func(threadID string) error

	calls []string
}

func (m *mockThreadRepository) AddNewThread(ctx context.Context, thread *domain.NewThread) (*domain.AddedThread, error) {
	m.calls = append(m.calls, "AddNewThread")
	if m.addNewThreadFunc == nil {
		return m.UnimplementedThreadRepository.AddNewThread(ctx, thread)
	}
	return m.addNewThreadFunc(thread)
}

func (m *mockThreadRepository) GetThreadByID(ctx context.Context, threadID string) (*domain.ThreadRow, error) {
	m.calls = append(m.calls, "GetThreadByID")
	if m.getThreadByIDFunc == nil {
		return m.UnimplementedThreadRepository.GetThreadByID(ctx, threadID)
	}
	return m.getThreadByIDFunc(threadID)
}

func (m *mockThreadRepository) VerifyAvailableThread(ctx context.Context, threadID string) error {
	m.calls = append(m.calls, "VerifyAvailableThread")
	if m.verifyAvailableThreadFunc == nil {
		return m.UnimplementedThreadRepository.VerifyAvailableThread(ctx, threadID)
	}
	return m.verifyAvailableThreadFunc(threadID)
}

type mockCommentRepository struct {
	ports.UnimplementedCommentRepository

	addCommentFunc            func(comment *domain.NewComment) (*domain.AddedComment, error)
	verifyCommentOwnerFunc    func(commentID, ownerID string) error
	verifyCommentInThreadFunc func(commentID, threadID string) error
	getCommentsFunc           func(threadID string) ([]domain.CommentRow, error)
	deleteCommentFunc         func(commentID string) error

	calls []string
}

func (m *mockCommentRepository) AddComment(ctx context.Context, comment *domain.NewComment) (*domain.AddedComment, error) {
	m.calls = append(m.calls, "AddComment")
	if m.addCommentFunc == nil {
		return m.UnimplementedCommentRepository.AddComment(ctx, comment)
	}
	return m.addCommentFunc(comment)
}

func (m *mockCommentRepository) VerifyCommentOwner(ctx context.Context, commentID, ownerID string) error {
	m.calls = append(m.calls, "VerifyCommentOwner")
	if m.verifyCommentOwnerFunc == nil {
		return m.UnimplementedCommentRepository.VerifyCommentOwner(ctx, commentID, ownerID)
	}
	return m.verifyCommentOwnerFunc(commentID, ownerID)
}

func (m *mockCommentRepository) VerifyCommentInThread(ctx context.Context, commentID, threadID string) error {
	m.calls = append(m.calls, "VerifyCommentInThread")
	if m.verifyCommentInThreadFunc == nil {
		return m.UnimplementedCommentRepository.VerifyCommentInThread(ctx, commentID, threadID)
	}
	return m.verifyCommentInThreadFunc(commentID, threadID)
}

func (m *mockCommentRepository) GetCommentsByThreadID(ctx context.Context, threadID string) ([]domain.CommentRow, error) {
	m.calls = append(m.calls, "GetCommentsByThreadID")
	if m.getCommentsFunc == nil {
		return m.UnimplementedCommentRepository.GetCommentsByThreadID(ctx, threadID)
	}
	return m.getCommentsFunc(threadID)
}

func (m *mockCommentRepository) DeleteComment(ctx context.Context, commentID string) error {
	m.calls = append(m.calls, "DeleteComment")
	if m.deleteCommentFunc == nil {
		return m.UnimplementedCommentRepository.DeleteComment(ctx, commentID)
	}
	return m.deleteCommentFunc(commentID)
}

// --- Helpers ---

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
