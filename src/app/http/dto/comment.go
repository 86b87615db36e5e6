package dto

import "forumapi/src/core/domain"

// AddedCommentResponse is returned by POST /threads/:threadId/comments.
type AddedCommentResponse struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

func (AddedCommentResponse) FromDomain(c *domain.AddedComment) AddedCommentResponse {
	return AddedCommentResponse{
		ID:      c.ID,
		Content: c.Content,
		Owner:   c.Owner,
	}
}

// CommentResponse is one entry of ThreadDetailResponse.Comments.
type CommentResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Date     string `json:"date"`
	Content  string `json:"content"`
}
