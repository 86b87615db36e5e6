package domain

import "strings"

// DeletedCommentContent replaces the content of soft-deleted comments on read.
const DeletedCommentContent = "**komentar telah dihapus**"

// NewComment is a validated request to comment on a thread.
type NewComment struct {
	Content  string
	ThreadID string
	Owner    string
}

// ParseNewComment validates payload fields content, threadId and owner.
// Content made only of whitespace is rejected.
func ParseNewComment(p Payload) (*NewComment, error) {
	v, err := requireStrings("NEW_COMMENT", p, "content", "threadId", "owner")
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(v["content"]) == "" {
		return nil, NewValidationError("NEW_COMMENT.NOT_BE_EMPTY_STRING", ErrEmptyContent, "content", "content must not be blank")
	}
	return &NewComment{
		Content:  v["content"],
		ThreadID: v["threadId"],
		Owner:    v["owner"],
	}, nil
}

// AddedComment is what the caller gets back after a comment is stored.
type AddedComment struct {
	ID      string
	Content string
	Owner   string
}

func ParseAddedComment(p Payload) (*AddedComment, error) {
	v, err := requireStrings("ADDED_COMMENT", p, "id", "content", "owner")
	if err != nil {
		return nil, err
	}
	return &AddedComment{
		ID:      v["id"],
		Content: v["content"],
		Owner:   v["owner"],
	}, nil
}

// CommentRow is a stored comment as listed for a thread.
type CommentRow struct {
	ID        string
	Username  string
	Date      string
	Content   string
	IsDeleted bool
}

// CommentView is the public projection of a comment inside a ThreadDetail.
type CommentView struct {
	ID       string
	Username string
	Date     string
	Content  string
}

// View projects the row, masking the content of deleted comments.
func (r CommentRow) View() CommentView {
	content := r.Content
	if r.IsDeleted {
		content = DeletedCommentContent
	}
	return CommentView{
		ID:       r.ID,
		Username: r.Username,
		Date:     r.Date,
		Content:  content,
	}
}

// DeleteCommentRequest identifies the comment a caller wants removed.
type DeleteCommentRequest struct {
	ID       string
	ThreadID string
	Owner    string
}
