// Package memrepo keeps threads and comments in process memory.
// It serves both repository ports from one store, for tests and for
// running the API without a database.
package memrepo

import (
	"context"
	"sort"
	"sync"
	"time"

	"forumapi/src/core/domain"
	"forumapi/src/core/ports"
)

var (
	_ ports.ThreadRepository  = (*MemoryRepo)(nil)
	_ ports.CommentRepository = (*MemoryRepo)(nil)
)

type threadRecord struct {
	id    string
	title string
	body  string
	date  time.Time
	owner string
}

type commentRecord struct {
	id        string
	threadID  string
	owner     string
	content   string
	date      time.Time
	isDeleted bool
}

// MemoryRepo stores forum records in process memory.
type MemoryRepo struct {
	mu       sync.RWMutex
	ids      ports.IDGenerator
	clock    ports.Clock
	users    map[string]string
	threads  map[string]*threadRecord
	comments map[string]*commentRecord
	order    []string
}

// New returns an initialized in-memory repository.
func New(ids ports.IDGenerator, clock ports.Clock) *MemoryRepo {
	return &MemoryRepo{
		ids:      ids,
		clock:    clock,
		users:    make(map[string]string),
		threads:  make(map[string]*threadRecord),
		comments: make(map[string]*commentRecord),
	}
}

// AddUser registers a username for an owner id so reads can resolve it.
func (r *MemoryRepo) AddUser(id, username string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[id] = username
}

func (r *MemoryRepo) Health(context.Context) error {
	return nil
}

func (r *MemoryRepo) AddNewThread(_ context.Context, thread *domain.NewThread) (*domain.AddedThread, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec := &threadRecord{
		id:    "thread-" + r.ids.NewID(),
		title: thread.Title,
		body:  thread.Body,
		date:  r.clock.Now(),
		owner: thread.Owner,
	}
	r.threads[rec.id] = rec
	return &domain.AddedThread{ID: rec.id, Title: rec.title, Owner: rec.owner}, nil
}

func (r *MemoryRepo) GetThreadByID(_ context.Context, threadID string) (*domain.ThreadRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.threads[threadID]
	if !ok {
		return nil, domain.NewNotFoundError(domain.MessageThreadNotFound)
	}
	return &domain.ThreadRow{
		ID:       rec.id,
		Title:    rec.title,
		Body:     rec.body,
		Date:     domain.FormatDate(rec.date),
		Owner:    rec.owner,
		Username: r.users[rec.owner],
	}, nil
}

func (r *MemoryRepo) VerifyAvailableThread(_ context.Context, threadID string) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if _, ok := r.threads[threadID]; !ok {
		return domain.NewNotFoundError(domain.MessageThreadNotFound)
	}
	return nil
}

func (r *MemoryRepo) AddComment(_ context.Context, comment *domain.NewComment) (*domain.AddedComment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.threads[comment.ThreadID]; !ok {
		return nil, domain.NewNotFoundError(domain.MessageThreadNotFound)
	}
	rec := &commentRecord{
		id:       "comment-" + r.ids.NewID(),
		threadID: comment.ThreadID,
		owner:    comment.Owner,
		content:  comment.Content,
		date:     r.clock.Now(),
	}
	r.comments[rec.id] = rec
	r.order = append(r.order, rec.id)
	return &domain.AddedComment{ID: rec.id, Content: rec.content, Owner: rec.owner}, nil
}

func (r *MemoryRepo) VerifyCommentOwner(_ context.Context, commentID, ownerID string) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.comments[commentID]
	if !ok || rec.owner != ownerID {
		return domain.NewForbiddenError(domain.MessageNotCommentOwner)
	}
	return nil
}

func (r *MemoryRepo) VerifyCommentInThread(_ context.Context, commentID, threadID string) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.comments[commentID]
	if !ok || rec.threadID != threadID {
		return domain.NewNotFoundError(domain.MessageCommentNotFound)
	}
	return nil
}

// GetCommentsByThreadID lists comments oldest first. Equal dates keep insertion order.
func (r *MemoryRepo) GetCommentsByThreadID(_ context.Context, threadID string) ([]domain.CommentRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	recs := make([]*commentRecord, 0)
	for _, id := range r.order {
		if rec := r.comments[id]; rec.threadID == threadID {
			recs = append(recs, rec)
		}
	}
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].date.Before(recs[j].date)
	})

	rows := make([]domain.CommentRow, 0, len(recs))
	for _, rec := range recs {
		rows = append(rows, domain.CommentRow{
			ID:        rec.id,
			Username:  r.users[rec.owner],
			Date:      domain.FormatDate(rec.date),
			Content:   rec.content,
			IsDeleted: rec.isDeleted,
		})
	}
	return rows, nil
}

func (r *MemoryRepo) DeleteComment(_ context.Context, commentID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.comments[commentID]
	if !ok {
		return domain.NewNotFoundError(domain.MessageCommentNotFound)
	}
	rec.isDeleted = true
	return nil
}
