package dto

import "forumapi/src/core/domain"

// AddedThreadResponse is returned by POST /threads.
type AddedThreadResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Owner string `json:"owner"`
}

func (AddedThreadResponse) FromDomain(t *domain.AddedThread) AddedThreadResponse {
	return AddedThreadResponse{
		ID:    t.ID,
		Title: t.Title,
		Owner: t.Owner,
	}
}

// ThreadDetailResponse is returned by GET /threads/:threadId.
type ThreadDetailResponse struct {
	ID       string            `json:"id"`
	Title    string            `json:"title"`
	Body     string            `json:"body"`
	Date     string            `json:"date"`
	Username string            `json:"username"`
	Comments []CommentResponse `json:"comments"`
}

func (ThreadDetailResponse) FromDomain(t *domain.ThreadDetail) ThreadDetailResponse {
	comments := make([]CommentResponse, 0, len(t.Comments))
	for _, c := range t.Comments {
		comments = append(comments, CommentResponse{
			ID:       c.ID,
			Username: c.Username,
			Date:     c.Date,
			Content:  c.Content,
		})
	}
	return ThreadDetailResponse{
		ID:       t.ID,
		Title:    t.Title,
		Body:     t.Body,
		Date:     t.Date,
		Username: t.Username,
		Comments: comments,
	}
}
