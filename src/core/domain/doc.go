// Package domain contains the core domain model for the forum.
//
// This package defines:
//   - Entities: threads and comments, each built from an untyped Payload by a
//     validating Parse* constructor (ParseNewThread, ParseNewComment, ...)
//   - Read models: ThreadRow, CommentRow and the masked CommentView
//   - Domain Errors: DomainError with category and reason sentinels
//
// Rules for this package:
//   - No external dependencies except the standard library
//   - No infrastructure concerns (database, HTTP, etc.)
//   - Validation runs presence, then type, then the entity's own rule
//   - Write-side entities are values; nothing mutates them after construction
//
// Example:
//
//	thread, err := domain.ParseNewThread(domain.Payload{
//	    "title": "title",
//	    "body":  "body",
//	    "owner": "user-123",
//	})
//	if domain.IsValidationError(err) {
//	    // reject the request
//	}
package domain
