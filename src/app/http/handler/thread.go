package handler

import (
	"github.com/gin-gonic/gin"

	"forumapi/src/app/http/dto"
	"forumapi/src/app/http/response"
	"forumapi/src/app/middleware"
	"forumapi/src/core/domain"
	"forumapi/src/core/usecase"
)

// ThreadHandler handles thread endpoints.
type ThreadHandler struct {
	threadService *usecase.ThreadService
}

func NewThreadHandler(threadService *usecase.ThreadService) *ThreadHandler {
	return &ThreadHandler{threadService: threadService}
}

// AddThread opens a thread owned by the authenticated user.
// POST /threads
func (h *ThreadHandler) AddThread(c *gin.Context) {
	payload := bindPayload(c)
	payload["owner"] = middleware.GetUserID(c)

	added, err := h.threadService.AddThread(c.Request.Context(), payload)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.Created(c, gin.H{"addedThread": dto.AddedThreadResponse{}.FromDomain(added)})
}

// GetThread returns a thread with its comments.
// GET /threads/:threadId
func (h *ThreadHandler) GetThread(c *gin.Context) {
	detail, err := h.threadService.GetThreadDetail(c.Request.Context(), c.Param("threadId"))
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, gin.H{"thread": dto.ThreadDetailResponse{}.FromDomain(detail)})
}

// bindPayload decodes the JSON body into a payload. A missing or malformed
// body yields an empty payload so the domain parsers report what is absent.
func bindPayload(c *gin.Context) domain.Payload {
	payload := domain.Payload{}
	if err := c.ShouldBindJSON(&payload); err != nil || payload == nil {
		return domain.Payload{}
	}
	return payload
}
