package handler

import (
	"github.com/gin-gonic/gin"

	"forumapi/src/app/http/dto"
	"forumapi/src/app/http/response"
	"forumapi/src/app/middleware"
	"forumapi/src/core/domain"
	"forumapi/src/core/usecase"
)

// CommentHandler handles comment endpoints.
type CommentHandler struct {
	commentService *usecase.CommentService
}

func NewCommentHandler(commentService *usecase.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// AddComment posts a comment on a thread. Only "content" is read from the body;
// thread and owner come from the path and the token.
// POST /threads/:threadId/comments
func (h *CommentHandler) AddComment(c *gin.Context) {
	body := bindPayload(c)
	payload := domain.Payload{
		"content":  body["content"],
		"threadId": c.Param("threadId"),
		"owner":    middleware.GetUserID(c),
	}

	added, err := h.commentService.AddComment(c.Request.Context(), payload)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.Created(c, gin.H{"addedComment": dto.AddedCommentResponse{}.FromDomain(added)})
}

// DeleteComment soft-deletes a comment owned by the authenticated user.
// DELETE /threads/:threadId/comments/:commentId
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	req := domain.DeleteCommentRequest{
		ID:       c.Param("commentId"),
		ThreadID: c.Param("threadId"),
		Owner:    middleware.GetUserID(c),
	}

	if err := h.commentService.DeleteComment(c.Request.Context(), req); err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.Done(c)
}
