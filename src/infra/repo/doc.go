// Package repo contains PostgreSQL implementations of the repository ports.
//
// Each repository covers one aggregate:
//   - ThreadRepository (thread_repo.go) implements ports.ThreadRepository
//   - CommentRepository (comment_repo.go) implements ports.CommentRepository
//
// Repositories receive the pool, an id generator and a clock via constructor
// injection. Ids are "thread-<generated>" and "comment-<generated>"; dates are
// stored as timestamptz and rendered with domain.FormatDate.
//
// The memrepo subpackage offers an in-memory implementation of the same ports.
package repo
